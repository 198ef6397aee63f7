package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/infrastructure/storage"
	"github.com/vfg2006/analytico-api/internal/api/handler/router"
	"github.com/vfg2006/analytico-api/internal/usecases/alerting"
	"github.com/vfg2006/analytico-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytico-api/internal/usecases/billing"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/internal/usecases/forecasting"
	"github.com/vfg2006/analytico-api/internal/usecases/importing"
	"github.com/vfg2006/analytico-api/internal/usecases/reporting"
	"github.com/vfg2006/analytico-api/pkg/metrics"
	"github.com/vfg2006/analytico-api/pkg/middleware"
)

var (
	allRoles  = []router.Middleware{middleware.AllRoles()}
	adminOnly = []router.Middleware{middleware.AdminOnly()}
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: allRoles,
		},
	}
}

func Companies(service catalog.Cataloger) []router.Route {
	routes := []router.Route{
		{Path: "/v1/companies", Method: http.MethodGet, Handler: ListCompanies(service), Middlewares: allRoles},
		{Path: "/v1/companies", Method: http.MethodPost, Handler: CreateCompany(service), Middlewares: allRoles},
	}

	return append(routes, router.Group("/v1/companies/:empresa_id", allRoles,
		router.Route{Path: "", Method: http.MethodGet, Handler: GetCompany(service)},
		router.Route{Path: "/dashboard", Method: http.MethodGet, Handler: GetDashboard(service)},

		router.Route{Path: "/products", Method: http.MethodGet, Handler: ListProducts(service)},
		router.Route{Path: "/products", Method: http.MethodPost, Handler: CreateProduct(service)},
		router.Route{Path: "/products/:id", Method: http.MethodPut, Handler: UpdateProduct(service)},
		router.Route{Path: "/products/:id", Method: http.MethodDelete, Handler: DeleteProduct(service)},

		router.Route{Path: "/sales", Method: http.MethodGet, Handler: ListSales(service)},
		router.Route{Path: "/sales", Method: http.MethodPost, Handler: RecordSale(service)},

		router.Route{Path: "/stock-entries", Method: http.MethodGet, Handler: ListStockEntries(service)},
		router.Route{Path: "/stock-entries", Method: http.MethodPost, Handler: RecordStockEntry(service)},

		router.Route{Path: "/goals", Method: http.MethodGet, Handler: ListGoals(service)},
		router.Route{Path: "/goals", Method: http.MethodPost, Handler: CreateGoal(service)},
		router.Route{Path: "/goals/progress", Method: http.MethodGet, Handler: GetGoalProgress(service)},
		router.Route{Path: "/goals/:id", Method: http.MethodPut, Handler: UpdateGoal(service)},
		router.Route{Path: "/goals/:id", Method: http.MethodDelete, Handler: DeleteGoal(service)},
	)...)
}

func Forecasts(companies catalog.Cataloger, service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecasts/generate",
			Method:      http.MethodPost,
			Handler:     GenerateForecast(companies, service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/companies/:empresa_id/forecasts",
			Method:      http.MethodGet,
			Handler:     ListForecasts(companies, service),
			Middlewares: allRoles,
		},
	}
}

func Alerts(companies catalog.Cataloger, service alerting.Alerter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:empresa_id/alerts",
			Method:      http.MethodGet,
			Handler:     ListAlerts(companies, service),
			Middlewares: allRoles,
		},
	}
}

func Reports(companies catalog.Cataloger, service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/generate",
			Method:      http.MethodPost,
			Handler:     GenerateReport(companies, service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/companies/:empresa_id/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(companies, service),
			Middlewares: allRoles,
		},
	}
}

func Uploads(companies catalog.Cataloger, service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/uploads",
			Method:      http.MethodPost,
			Handler:     ImportSpreadsheet(companies, service),
			Middlewares: allRoles,
		},
	}
}

// Files serve os arquivos gravados sob STORAGE_PUBLIC_URL (prefixo /files)
func Files(companies catalog.Cataloger, store storage.Storage) []router.Route {
	return []router.Route{
		{
			Path:        "/files/*filepath",
			Method:      http.MethodGet,
			Handler:     DownloadFile(companies, store),
			Middlewares: allRoles,
		},
	}
}

func Billing(service billing.Biller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/billing/checkout-session",
			Method:      http.MethodPost,
			Handler:     CreateCheckoutSession(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/billing/portal-session",
			Method:      http.MethodPost,
			Handler:     CreatePortalSession(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/billing/subscription-status",
			Method:      http.MethodPost,
			Handler:     GetSubscriptionStatus(service),
			Middlewares: allRoles,
		},
		{
			Path:    "/v1/webhooks/stripe",
			Method:  http.MethodPost,
			Handler: StripeWebhook(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
