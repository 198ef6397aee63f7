package importing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/infrastructure/storage"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/metrics"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

const (
	importedCategory = "Importado"
	defaultCostRatio = 0.7
)

type Importer interface {
	Import(ctx context.Context, request domain.ImportRequest) (*domain.ImportResult, error)
}

type Service struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	uploadRepo  repository.UploadRepository
	storage     storage.Storage
	now         func() time.Time
}

func NewService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	uploadRepo repository.UploadRepository,
	store storage.Storage,
) *Service {
	return &Service{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		uploadRepo:  uploadRepo,
		storage:     store,
		now:         time.Now,
	}
}

// rowError segue a numeração da planilha: o cabeçalho é a linha 1
func rowError(index int, format string, args ...any) string {
	return fmt.Sprintf("Linha %d: %s", index+2, fmt.Sprintf(format, args...))
}

func normalizeFileType(fileType string) (string, error) {
	fileType = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fileType), "."))
	switch fileType {
	case domain.FileTypeCSV, domain.FileTypeXLSX:
		return fileType, nil
	case "xls":
		return "", fmt.Errorf("formato .xls não suportado, salve a planilha como .xlsx")
	}
	return "", fmt.Errorf("tipo %q não suportado, use csv ou xlsx", fileType)
}

func (s *Service) Import(ctx context.Context, request domain.ImportRequest) (*domain.ImportResult, error) {
	if request.CompanyID == "" || request.FileContent == "" || request.FileType == "" {
		return nil, NewImportError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, request.CompanyID, "empresa_id, file_content e file_type são obrigatórios")
	}

	fileType, err := normalizeFileType(request.FileType)
	if err != nil {
		return nil, NewImportError(ErrInvalidFileType, apiErrors.ErrInvalidFormat, request.CompanyID, err.Error())
	}

	kind := strings.ToLower(strings.TrimSpace(request.Kind))
	if kind == "" {
		kind = domain.ImportKindSales
	}
	if kind != domain.ImportKindSales && kind != domain.ImportKindProducts {
		return nil, NewImportError(ErrInvalidKind, apiErrors.ErrInvalidRequest, request.CompanyID, kind)
	}

	data, err := decodeContent(request.FileContent)
	if err != nil {
		return nil, NewImportError(ErrInvalidContent, apiErrors.ErrInvalidFormat, request.CompanyID, err.Error())
	}

	rows, err := parseRows(fileType, data)
	if err != nil {
		return nil, NewImportError(ErrInvalidContent, apiErrors.ErrInvalidFormat, request.CompanyID, err.Error())
	}
	if len(rows) == 0 {
		return nil, NewImportError(ErrNoValidRows, apiErrors.ErrInvalidRequest, request.CompanyID, "arquivo vazio")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"company_id": request.CompanyID,
		"kind":       kind,
		"file_type":  fileType,
		"rows":       len(rows),
	})
	logger.Info("importing: processando planilha")

	var result *domain.ImportResult
	if kind == domain.ImportKindProducts {
		result, err = s.importProducts(ctx, request.CompanyID, rows)
	} else {
		result, err = s.importSales(ctx, request.CompanyID, rows)
	}
	if err != nil {
		return nil, err
	}

	metrics.ImportRows.WithLabelValues("ok").Add(float64(result.ProcessedRows))
	metrics.ImportRows.WithLabelValues("erro").Add(float64(len(result.Errors)))

	upload, err := s.storeFile(ctx, request.CompanyID, fileType, data)
	if err != nil {
		return nil, err
	}

	result.Success = true
	result.UploadID = upload.ID
	result.URL = upload.URL

	logger.WithFields(log.Fields{
		"processed": result.ProcessedRows,
		"created":   result.CreatedProducts,
		"errors":    len(result.Errors),
	}).Info("importing: planilha importada")

	return result, nil
}

func (s *Service) storeFile(ctx context.Context, companyID, fileType string, data []byte) (*domain.Upload, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewImportError(ErrStorage, apiErrors.ErrInternalServer, companyID, err.Error())
	}

	key := fmt.Sprintf("uploads/%s/%s-%s.%s", companyID, s.now().Format("20060102150405"), id, fileType)
	url, err := s.storage.Save(ctx, key, data)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("importing: falha ao armazenar arquivo")
		return nil, NewImportError(ErrStorage, apiErrors.ErrInternalServer, companyID, err.Error())
	}

	upload, err := s.uploadRepo.Create(ctx, &domain.Upload{
		CompanyID: companyID,
		FileType:  fileType,
		URL:       url,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("importing: falha ao registrar upload")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao registrar upload")
	}

	return upload, nil
}

func noValidRows(companyID string, rowErrors []string) *ImportError {
	err := NewImportError(ErrNoValidRows, apiErrors.ErrInvalidRequest, companyID, strings.Join(rowErrors, "; "))
	err.RowErrors = rowErrors
	return err
}

func (s *Service) importProducts(ctx context.Context, companyID string, rows []Row) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Errors: []string{}}
	products := make([]*domain.Product, 0, len(rows))

	for i, row := range rows {
		if row.Empty() {
			continue
		}

		product, msg := productFromRow(companyID, row)
		if msg != "" {
			result.Errors = append(result.Errors, rowError(i, "%s", msg))
			continue
		}
		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, noValidRows(companyID, result.Errors)
	}

	if err := s.productRepo.CreateMany(ctx, products); err != nil {
		log.ForContext(ctx).WithError(err).Error("importing: falha ao criar produtos")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao criar produtos")
	}

	result.ProcessedRows = len(products)
	result.CreatedProducts = len(products)
	return result, nil
}

func productFromRow(companyID string, row Row) (*domain.Product, string) {
	name := row.First("nome", "produto_nome", "produto")
	if name == "" {
		return nil, "nome do produto é obrigatório"
	}

	price, err := parseNumber(row.First("preco", "preco_venda"))
	if err != nil || price <= 0 {
		return nil, "preço de venda deve ser maior que zero"
	}

	quantity := 0
	if raw := row.First("quantidade", "quantidade_estoque", "estoque"); raw != "" {
		quantity, err = parseQuantity(raw)
		if err != nil || quantity < 0 {
			return nil, "quantidade deve ser um inteiro maior ou igual a zero"
		}
	}

	cost := price * defaultCostRatio
	if raw := row.First("preco_custo", "custo"); raw != "" {
		cost, err = parseNumber(raw)
		if err != nil || cost < 0 {
			return nil, "preço de custo inválido"
		}
	}

	category := row.First("categoria")
	if category == "" {
		category = importedCategory
	}

	return &domain.Product{
		CompanyID:     companyID,
		Name:          name,
		Category:      category,
		CostPrice:     utils.RoundWithTwoDecimalPlace(cost),
		SalePrice:     utils.RoundWithTwoDecimalPlace(price),
		StockQuantity: quantity,
	}, ""
}

type saleRow struct {
	productName string
	quantity    int
	unitPrice   *float64
	saleDate    time.Time
}

func (s *Service) importSales(ctx context.Context, companyID string, rows []Row) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Errors: []string{}}

	existing, err := s.productRepo.ListByCompany(ctx, companyID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("importing: falha ao listar produtos")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao listar produtos")
	}

	byName := make(map[string]*domain.Product, len(existing))
	for _, p := range existing {
		byName[strings.ToLower(strings.TrimSpace(p.Name))] = p
	}

	now := s.now()
	sales := make([]*domain.Sale, 0, len(rows))
	var newProducts []*domain.Product

	for i, row := range rows {
		if row.Empty() {
			continue
		}

		parsed, msg := saleFromRow(row, now)
		if msg != "" {
			result.Errors = append(result.Errors, rowError(i, "%s", msg))
			continue
		}

		key := strings.ToLower(parsed.productName)
		product, ok := byName[key]
		if !ok {
			if parsed.unitPrice == nil {
				result.Errors = append(result.Errors, rowError(i, "produto %q não cadastrado e sem preço unitário", parsed.productName))
				continue
			}

			// o id é atribuído aqui para as vendas referenciarem o produto
			// antes de ele existir no banco
			product = &domain.Product{
				ID:        uuid.NewString(),
				CompanyID: companyID,
				Name:      parsed.productName,
				Category:  importedCategory,
				SalePrice: *parsed.unitPrice,
				CostPrice: utils.RoundWithTwoDecimalPlace(*parsed.unitPrice * defaultCostRatio),
			}
			newProducts = append(newProducts, product)
			byName[key] = product
		}

		unitPrice := product.SalePrice
		if parsed.unitPrice != nil {
			unitPrice = *parsed.unitPrice
		}

		sales = append(sales, &domain.Sale{
			CompanyID:   companyID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    parsed.quantity,
			SaleDate:    parsed.saleDate,
			UnitPrice:   unitPrice,
			Total:       utils.RoundWithTwoDecimalPlace(unitPrice * float64(parsed.quantity)),
		})
	}

	if len(sales) == 0 {
		return nil, noValidRows(companyID, result.Errors)
	}

	if err := s.saleRepo.ImportSales(ctx, newProducts, sales); err != nil {
		log.ForContext(ctx).WithError(err).Error("importing: falha ao gravar vendas")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, companyID, "Erro ao gravar vendas")
	}

	result.ProcessedRows = len(sales)
	result.CreatedProducts = len(newProducts)
	return result, nil
}

func saleFromRow(row Row, now time.Time) (*saleRow, string) {
	name := row.First("produto", "produto_nome", "nome")
	if name == "" {
		return nil, "produto é obrigatório"
	}

	quantity, err := parseQuantity(row.First("quantidade"))
	if err != nil || quantity <= 0 {
		return nil, "quantidade deve ser um inteiro maior que zero"
	}

	parsed := &saleRow{productName: name, quantity: quantity}

	if raw := row.First("preco_unitario", "preco"); raw != "" {
		price, err := parseNumber(raw)
		if err != nil || price <= 0 {
			return nil, "preço unitário deve ser maior que zero"
		}
		price = utils.RoundWithTwoDecimalPlace(price)
		parsed.unitPrice = &price
	}

	parsed.saleDate, err = parseDate(row.First("data_venda", "data"), now)
	if err != nil {
		return nil, fmt.Sprintf("data de venda inválida: %s", row.First("data_venda", "data"))
	}

	return parsed, ""
}
