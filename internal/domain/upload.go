package domain

import "time"

const (
	FileTypeCSV  = "csv"
	FileTypeXLSX = "xlsx"

	ImportKindSales    = "vendas"
	ImportKindProducts = "produtos"
)

type Upload struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"empresa_id"`
	FileType  string    `json:"tipo_arquivo"`
	URL       string    `json:"url"`
	SentAt    time.Time `json:"data_envio"`
}

type ImportRequest struct {
	CompanyID   string `json:"empresa_id"`
	FileContent string `json:"file_content"`
	FileType    string `json:"file_type"`
	Kind        string `json:"tipo"`
}

type ImportResult struct {
	Success         bool     `json:"success"`
	ProcessedRows   int      `json:"linhas_processadas"`
	CreatedProducts int      `json:"produtos_criados"`
	Errors          []string `json:"erros"`
	UploadID        string   `json:"upload_id"`
	URL             string   `json:"url"`
}
