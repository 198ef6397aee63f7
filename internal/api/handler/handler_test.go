package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/internal/api/handler/router"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/analytico-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/analytico-api/internal/usecases/billing"
	billingmocks "github.com/vfg2006/analytico-api/internal/usecases/billing/mocks"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	catalogmocks "github.com/vfg2006/analytico-api/internal/usecases/catalog/mocks"
	forecastmocks "github.com/vfg2006/analytico-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/analytico-api/internal/usecases/importing"
	importmocks "github.com/vfg2006/analytico-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	client = &domain.Claims{UserID: 7, UserRoleID: middleware.RoleClient}
	admin  = &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin}
)

func init() {
	log.SetupTestLogger()
}

func serve(routes []router.Route, claims *domain.Claims, method, path, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func ownCompany(companies *catalogmocks.MockCataloger, id string) {
	companies.EXPECT().
		AuthorizeCompany(gomock.Any(), gomock.Any(), id).
		Return(&domain.Company{ID: id, UserID: client.UserID, Name: "Loja"}, nil)
}

func TestCompanyAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)

	t.Run("empresa de outro usuário", func(t *testing.T) {
		companies.EXPECT().
			AuthorizeCompany(gomock.Any(), client, "emp2").
			Return(nil, catalog.NewCatalogErrorWithID(catalog.ErrForbidden, apiErrors.ErrInsufficientPrivilege, "emp2", "Você não tem acesso a esta empresa"))

		rec := serve(Companies(companies), client, http.MethodGet, "/v1/companies/emp2/products", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		rec := serve(Companies(companies), nil, http.MethodGet, "/v1/companies/emp1", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empresa inexistente", func(t *testing.T) {
		companies.EXPECT().
			AuthorizeCompany(gomock.Any(), client, "nada").
			Return(nil, catalog.NewCatalogErrorWithID(catalog.ErrCompanyNotFound, apiErrors.ErrResourceNotFound, "nada", "Empresa não encontrada"))

		rec := serve(Companies(companies), client, http.MethodGet, "/v1/companies/nada", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)

	companies.EXPECT().
		CreateCompany(gomock.Any(), client.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, c *domain.Company) (*domain.Company, error) {
			c.ID = "emp1"
			return c, nil
		})

	rec := serve(Companies(companies), client, http.MethodPost, "/v1/companies", `{"nome":"Padaria"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var company domain.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &company))
	assert.Equal(t, "emp1", company.ID)
	assert.Equal(t, "Padaria", company.Name)
}

func TestListSales(t *testing.T) {
	t.Run("data_fim inclusiva e limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := catalogmocks.NewMockCataloger(ctrl)
		ownCompany(companies, "emp1")

		companies.EXPECT().
			ListSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
				assert.Equal(t, "emp1", filter.CompanyID)
				assert.Equal(t, uint64(20), filter.Limit)
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
				assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), *filter.EndDate)
				return []*domain.Sale{}, nil
			})

		rec := serve(Companies(companies), client, http.MethodGet,
			"/v1/companies/emp1/sales?data_inicio=2024-03-01&data_fim=2024-03-10&limit=20", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("limit inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := catalogmocks.NewMockCataloger(ctrl)
		ownCompany(companies, "emp1")

		rec := serve(Companies(companies), client, http.MethodGet, "/v1/companies/emp1/sales?limit=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("data inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := catalogmocks.NewMockCataloger(ctrl)
		ownCompany(companies, "emp1")

		rec := serve(Companies(companies), client, http.MethodGet, "/v1/companies/emp1/sales?data_inicio=01/03/2024", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecordSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)

	t.Run("estoque insuficiente", func(t *testing.T) {
		ownCompany(companies, "emp1")
		companies.EXPECT().
			RecordSale(gomock.Any(), "emp1", gomock.Any()).
			Return(nil, catalog.NewCatalogErrorWithID(catalog.ErrInsufficientStock, apiErrors.ErrInsufficientStock, "p1", "Estoque insuficiente"))

		rec := serve(Companies(companies), client, http.MethodPost, "/v1/companies/emp1/sales",
			`{"itens":[{"produto_id":"p1","quantidade":50}]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInsufficientStock, body.Code)
		assert.Equal(t, map[string]any{"id": "p1"}, body.Details)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		ownCompany(companies, "emp1")

		rec := serve(Companies(companies), client, http.MethodPost, "/v1/companies/emp1/sales", `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("venda registrada", func(t *testing.T) {
		ownCompany(companies, "emp1")
		companies.EXPECT().
			RecordSale(gomock.Any(), "emp1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req domain.CreateSaleRequest) ([]*domain.Sale, error) {
				require.Len(t, req.Items, 1)
				return []*domain.Sale{{ID: "v1", ProductID: req.Items[0].ProductID, Quantity: req.Items[0].Quantity}}, nil
			})

		rec := serve(Companies(companies), client, http.MethodPost, "/v1/companies/emp1/sales",
			`{"itens":[{"produto_id":"p1","quantidade":2}]}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestUpdateProductUsesPathIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)
	ownCompany(companies, "emp1")

	companies.EXPECT().
		UpdateProduct(gomock.Any(), "emp1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, "p9", p.ID)
			assert.Equal(t, "emp1", p.CompanyID)
			return p, nil
		})

	rec := serve(Companies(companies), client, http.MethodPut, "/v1/companies/emp1/products/p9",
		`{"id":"outro","empresa_id":"emp2","nome":"Café","preco_venda":10}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGoalProgressRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)
	ownCompany(companies, "emp1")

	companies.EXPECT().
		GoalProgress(gomock.Any(), "emp1").
		Return([]domain.GoalProgress{{Progress: 120, DisplayProgress: 100, Reached: true}}, nil)

	rec := serve(Companies(companies), client, http.MethodGet, "/v1/companies/emp1/goals/progress", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"progresso_exibicao":100`)
}

func TestGenerateForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)
	forecaster := forecastmocks.NewMockForecaster(ctrl)

	t.Run("empresa de outro usuário não gera previsão", func(t *testing.T) {
		companies.EXPECT().
			AuthorizeCompany(gomock.Any(), client, "emp2").
			Return(nil, catalog.NewCatalogError(catalog.ErrForbidden, apiErrors.ErrInsufficientPrivilege, ""))

		rec := serve(Forecasts(companies, forecaster), client, http.MethodPost, "/v1/forecasts/generate", `{"empresa_id":"emp2"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("sucesso", func(t *testing.T) {
		ownCompany(companies, "emp1")
		forecaster.EXPECT().
			Generate(gomock.Any(), "emp1").
			Return(&domain.ForecastResult{Success: true, Trend: domain.Trend{Label: domain.TrendGrowth}}, nil)

		rec := serve(Forecasts(companies, forecaster), client, http.MethodPost, "/v1/forecasts/generate", `{"empresa_id":"emp1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"crescimento":"crescimento"`)
	})
}

func TestImportSpreadsheetRowErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)
	importer := importmocks.NewMockImporter(ctrl)
	ownCompany(companies, "emp1")

	importErr := importing.NewImportError(importing.ErrNoValidRows, apiErrors.ErrInvalidRequest, "emp1", "")
	importErr.RowErrors = []string{"Linha 2: quantidade inválida"}
	importer.EXPECT().Import(gomock.Any(), gomock.Any()).Return(nil, importErr)

	rec := serve(Uploads(companies, importer), client, http.MethodPost, "/v1/uploads",
		`{"empresa_id":"emp1","file_content":"YQ==","file_type":"csv"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Linha 2")
}

func TestRegisterIgnoresRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Zero(t, u.RoleID)
			assert.Equal(t, "segredo123", u.PasswordHash)
			return &domain.User{ID: 3, Name: u.Name, Email: u.Email, RoleID: middleware.RoleClient, Active: true}, nil
		})

	rec := serve(Authentication(auth), nil, http.MethodPost, "/v1/register",
		`{"nome":"Ana","email":"ana@example.com","senha":"segredo123","role_id":1}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	t.Run("credenciais inválidas", func(t *testing.T) {
		auth.EXPECT().
			LoginUser(gomock.Any(), "ana@example.com", "errada").
			Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos"))

		rec := serve(Authentication(auth), nil, http.MethodPost, "/v1/login", `{"email":"ana@example.com","senha":"errada"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
	})

	t.Run("token", func(t *testing.T) {
		auth.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "segredo123").Return("jwt", nil)

		rec := serve(Authentication(auth), nil, http.MethodPost, "/v1/login", `{"email":"ana@example.com","senha":"segredo123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"jwt"}`, rec.Body.String())
	})
}

func TestCheckoutSessionOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	biller := billingmocks.NewMockBiller(ctrl)

	t.Run("cliente não cria checkout para outro usuário", func(t *testing.T) {
		rec := serve(Billing(biller), client, http.MethodPost, "/v1/billing/checkout-session",
			`{"user_id":99,"email":"a@b.com","plan_id":"monthly"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("user_id ausente usa o token", func(t *testing.T) {
		biller.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
				assert.Equal(t, client.UserID, req.UserID)
				return &domain.CheckoutResponse{Success: true, CheckoutURL: "https://checkout", SessionID: "cs_1"}, nil
			})

		rec := serve(Billing(biller), client, http.MethodPost, "/v1/billing/checkout-session",
			`{"email":"a@b.com","plan_id":"monthly"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin opera qualquer usuário", func(t *testing.T) {
		biller.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&domain.CheckoutResponse{Success: true}, nil)

		rec := serve(Billing(biller), admin, http.MethodPost, "/v1/billing/checkout-session",
			`{"user_id":99,"email":"a@b.com","plan_id":"yearly"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPortalSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	biller := billingmocks.NewMockBiller(ctrl)

	t.Run("customer de outro usuário", func(t *testing.T) {
		biller.EXPECT().
			SubscriptionStatus(gomock.Any(), client.UserID).
			Return(&domain.SubscriptionStatus{Status: "active", CustomerID: "cus_meu"}, nil)

		rec := serve(Billing(biller), client, http.MethodPost, "/v1/billing/portal-session", `{"customer_id":"cus_outro"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("customer omitido vem da assinatura", func(t *testing.T) {
		biller.EXPECT().
			SubscriptionStatus(gomock.Any(), client.UserID).
			Return(&domain.SubscriptionStatus{Status: "active", CustomerID: "cus_meu"}, nil)
		biller.EXPECT().
			CreatePortalSession(gomock.Any(), domain.PortalRequest{CustomerID: "cus_meu", ReturnURL: "https://app"}).
			Return("https://portal", nil)

		rec := serve(Billing(biller), client, http.MethodPost, "/v1/billing/portal-session", `{"return_url":"https://app"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"portal_url":"https://portal"}`, rec.Body.String())
	})
}

func TestSubscriptionStatusWithoutBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	biller := billingmocks.NewMockBiller(ctrl)

	biller.EXPECT().
		SubscriptionStatus(gomock.Any(), client.UserID).
		Return(&domain.SubscriptionStatus{Status: "inactive"}, nil)

	rec := serve(Billing(biller), client, http.MethodPost, "/v1/billing/subscription-status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body SubscriptionStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.Subscription.Active)
	assert.Equal(t, "Nenhuma assinatura ativa", body.Message)
}

func TestStripeWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	biller := billingmocks.NewMockBiller(ctrl)

	t.Run("assinatura inválida", func(t *testing.T) {
		biller.EXPECT().
			HandleWebhook(gomock.Any(), []byte(`{"id":"evt_1"}`), "").
			Return(billing.NewBillingError(billing.ErrInvalidSignature, apiErrors.ErrInvalidSignature, ""))

		rec := serve(Billing(biller), nil, http.MethodPost, "/v1/webhooks/stripe", `{"id":"evt_1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidSignature, decodeError(t, rec).Code)
	})

	t.Run("evento aceito", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Billing(biller)...))
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", strings.NewReader(`{"id":"evt_2"}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		rec := httptest.NewRecorder()

		biller.EXPECT().HandleWebhook(gomock.Any(), []byte(`{"id":"evt_2"}`), "t=1,v1=abc").Return(nil)

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	})
}

type fakeSync struct {
	triggered int
}

func (f *fakeSync) TriggerManualSync() { f.triggered++ }

func (f *fakeSync) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestCronJobs(t *testing.T) {
	sync := &fakeSync{}
	routes := CronJobs(CronJobServices{ForecastSyncService: sync})

	t.Run("cliente não dispara", func(t *testing.T) {
		rec := serve(routes, client, http.MethodPost, "/v1/cron/forecast/run", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, sync.triggered)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rec := serve(routes, admin, http.MethodPost, "/v1/cron/meta/run", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("previsões", func(t *testing.T) {
		rec := serve(routes, admin, http.MethodPost, "/v1/cron/forecast/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, sync.triggered)
	})

	t.Run("status", func(t *testing.T) {
		rec := serve(routes, admin, http.MethodGet, "/v1/cron/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"forecast":{"sync_running":false}}`, rec.Body.String())
	})
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(), nil, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
