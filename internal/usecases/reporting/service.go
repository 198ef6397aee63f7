package reporting

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/vfg2006/analytico-api/infrastructure/integrator/mailer"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/infrastructure/storage"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/metrics"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

const topProductsLimit = 10

type Reporter interface {
	Generate(ctx context.Context, request domain.GenerateReportRequest) (*domain.GenerateReportResponse, error)
	List(ctx context.Context, companyID string) ([]*domain.Report, error)
}

type Service struct {
	companyRepo repository.CompanyRepository
	saleRepo    repository.SaleRepository
	reportRepo  repository.ReportRepository
	storage     storage.Storage
	mailer      mailer.Mailer
	renderer    Renderer
	now         func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	saleRepo repository.SaleRepository,
	reportRepo repository.ReportRepository,
	store storage.Storage,
	mail mailer.Mailer,
	renderer Renderer,
) *Service {
	return &Service{
		companyRepo: companyRepo,
		saleRepo:    saleRepo,
		reportRepo:  reportRepo,
		storage:     store,
		mailer:      mail,
		renderer:    renderer,
		now:         time.Now,
	}
}

// PeriodBounds devolve o intervalo consultado [start, end) e o último dia exibido
func PeriodBounds(period string, now time.Time) (start, end, lastDay time.Time, err error) {
	switch period {
	case domain.ReportPeriodWeekly:
		return now.AddDate(0, 0, -7), now, now, nil
	case domain.ReportPeriodMonthly:
		start, end = utils.MonthBounds(now)
		return start, end, end.AddDate(0, 0, -1), nil
	}
	return time.Time{}, time.Time{}, time.Time{}, ErrInvalidPeriod
}

func (s *Service) Generate(ctx context.Context, request domain.GenerateReportRequest) (*domain.GenerateReportResponse, error) {
	companyID := request.CompanyID
	period := strings.ToLower(strings.TrimSpace(request.Period))
	if companyID == "" || period == "" {
		return nil, NewReportError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, companyID, "")
	}

	start, end, lastDay, err := PeriodBounds(period, s.now())
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrInvalidRequest, companyID, period)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"company_id": companyID,
		"periodo":    period,
	})

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		logger.WithError(err).Error("reporting: falha ao buscar empresa")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao buscar empresa")
	}
	if company == nil {
		return nil, NewReportError(ErrCompanyNotFound, apiErrors.ErrResourceNotFound, companyID, "")
	}

	agg, err := s.saleRepo.Aggregate(ctx, companyID, &start, &end)
	if err != nil {
		logger.WithError(err).Error("reporting: falha ao agregar vendas")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao agregar vendas")
	}

	top, err := s.saleRepo.TopProducts(ctx, companyID, start, end, topProductsLimit)
	if err != nil {
		logger.WithError(err).Error("reporting: falha ao buscar produtos mais vendidos")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao buscar produtos mais vendidos")
	}

	summary := BuildSummary(company.Name, period, start, lastDay, agg, top)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(ErrStorage, apiErrors.ErrInternalServer, companyID, err.Error())
	}
	key := fmt.Sprintf("relatorios/relatorio-%s-%s.pdf", companyID, id)

	pdfURL, content, err := s.renderAndStore(ctx, key, summary)
	if err != nil {
		return nil, err
	}

	report, err := s.reportRepo.Create(ctx, &domain.Report{
		CompanyID:       companyID,
		PDFURL:          pdfURL,
		ReferencePeriod: period,
	})
	if err != nil {
		logger.WithError(err).Error("reporting: falha ao registrar relatório")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao registrar relatório")
	}

	metrics.ReportsGenerated.WithLabelValues(period).Inc()

	message := "Relatório gerado com sucesso"
	if request.Email != "" {
		message = s.sendByEmail(ctx, request.Email, summary, path.Base(key), content)
	}

	logger.WithField("report_id", report.ID).Info("reporting: relatório gerado")

	return &domain.GenerateReportResponse{
		Success:  true,
		ReportID: report.ID,
		PDFURL:   pdfURL,
		Data:     summary,
		Message:  message,
	}, nil
}

// renderAndStore grava o PDF. Sem fonte disponível o relatório fica só com a referência do arquivo.
func (s *Service) renderAndStore(ctx context.Context, key string, summary domain.ReportSummary) (string, []byte, error) {
	content, err := s.renderer.Render(summary)
	if errors.Is(err, ErrFontUnavailable) {
		log.ForContext(ctx).WithError(err).Warn("reporting: PDF não renderizado, gravando apenas a referência")
		return path.Base(key), nil, nil
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: falha ao renderizar PDF")
		return "", nil, NewReportError(ErrRender, apiErrors.ErrInternalServer, "", err.Error())
	}

	url, err := s.storage.Save(ctx, key, content)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: falha ao armazenar PDF")
		return "", nil, NewReportError(ErrStorage, apiErrors.ErrInternalServer, "", err.Error())
	}
	return url, content, nil
}

func (s *Service) sendByEmail(ctx context.Context, to string, summary domain.ReportSummary, fileName string, content []byte) string {
	subject := fmt.Sprintf("Relatório %s - %s", summary.Period, summary.CompanyName)
	body := fmt.Sprintf("Segue o relatório de vendas de %s a %s.\n\nTotal de vendas: %s\nNúmero de vendas: %d\n",
		summary.StartDate.Format("02/01/2006"), summary.EndDate.Format("02/01/2006"),
		formatBRL(summary.TotalSales), summary.SalesCount)

	var attachments []mailer.Attachment
	if content != nil {
		attachments = append(attachments, mailer.Attachment{Name: fileName, Content: content})
	}

	if err := s.mailer.Send(ctx, to, subject, body, attachments...); err != nil {
		log.ForContext(ctx).WithError(err).Warn("reporting: relatório gerado mas o e-mail falhou")
		return "Relatório gerado, mas não foi possível enviar o email"
	}
	return "Relatório gerado e enviado por email"
}

func BuildSummary(companyName, period string, start, lastDay time.Time, agg domain.SalesAggregate, top []domain.TopProduct) domain.ReportSummary {
	summary := domain.ReportSummary{
		CompanyName:   companyName,
		Period:        period,
		StartDate:     start,
		EndDate:       lastDay,
		TotalSales:    utils.RoundWithTwoDecimalPlace(agg.Total),
		TotalQuantity: agg.Quantity,
		SalesCount:    agg.Count,
		TopProducts:   make([]domain.TopProduct, 0, len(top)),
	}
	if agg.Count > 0 {
		summary.AverageTicket = utils.RoundWithTwoDecimalPlace(agg.Total / float64(agg.Count))
	}
	for _, p := range top {
		p.Total = utils.RoundWithTwoDecimalPlace(p.Total)
		summary.TopProducts = append(summary.TopProducts, p)
	}
	return summary
}

func (s *Service) List(ctx context.Context, companyID string) ([]*domain.Report, error) {
	reports, err := s.reportRepo.List(ctx, companyID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: falha ao listar relatórios")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao listar relatórios")
	}
	return reports, nil
}
