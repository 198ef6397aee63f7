package domain

import "time"

const (
	ReportPeriodWeekly  = "semanal"
	ReportPeriodMonthly = "mensal"
)

type Report struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"empresa_id"`
	PDFURL          string    `json:"url_pdf"`
	ReferencePeriod string    `json:"periodo_referencia"`
	CreatedAt       time.Time `json:"criado_em"`
}

type GenerateReportRequest struct {
	CompanyID string `json:"empresa_id"`
	Period    string `json:"periodo"`
	Email     string `json:"email,omitempty"`
}

type TopProduct struct {
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade"`
	Total    float64 `json:"total"`
}

type ReportSummary struct {
	CompanyName   string       `json:"empresa"`
	Period        string       `json:"periodo"`
	StartDate     time.Time    `json:"data_inicio"`
	EndDate       time.Time    `json:"data_fim"`
	TotalSales    float64      `json:"total_vendas"`
	TotalQuantity int          `json:"total_quantidade"`
	AverageTicket float64      `json:"ticket_medio"`
	SalesCount    int          `json:"numero_vendas"`
	TopProducts   []TopProduct `json:"produtos_mais_vendidos"`
}

type GenerateReportResponse struct {
	Success  bool          `json:"success"`
	ReportID string        `json:"relatorio_id"`
	PDFURL   string        `json:"url_pdf"`
	Data     ReportSummary `json:"dados"`
	Message  string        `json:"message"`
}
