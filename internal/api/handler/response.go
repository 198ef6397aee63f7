package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytico-api/internal/usecases/billing"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/internal/usecases/forecasting"
	"github.com/vfg2006/analytico-api/internal/usecases/importing"
	"github.com/vfg2006/analytico-api/internal/usecases/reporting"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodySize = 20 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst)
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// requireClaims devolve as claims do contexto ou responde 401
func requireClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// authorizeCompany confere se o usuário autenticado pode operar a empresa
func authorizeCompany(w http.ResponseWriter, r *http.Request, service catalog.Cataloger, companyID string) (*domain.Company, bool) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return nil, false
	}

	company, err := service.AuthorizeCompany(r.Context(), claims, companyID)
	if err != nil {
		handleError(w, r, err, "Erro ao verificar acesso à empresa")
		return nil, false
	}

	return company, true
}

// handleError traduz os erros tipados dos casos de uso para o corpo padronizado
func handleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		authErr     *authenticating.AuthError
		catalogErr  *catalog.CatalogError
		forecastErr *forecasting.ForecastError
		importErr   *importing.ImportError
		reportErr   *reporting.ReportError
		billingErr  *billing.BillingError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.As(err, &catalogErr):
		var details any
		if catalogErr.ResourceID != "" {
			details = map[string]string{"id": catalogErr.ResourceID}
		}
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), details)
	case errors.As(err, &forecastErr):
		apiErrors.WriteError(w, forecastErr.Code, forecastErr.Error(), nil)
	case errors.As(err, &importErr):
		var details any
		if len(importErr.RowErrors) > 0 {
			details = map[string]any{"erros": importErr.RowErrors}
		}
		apiErrors.WriteError(w, importErr.Code, importErr.Error(), details)
	case errors.As(err, &reportErr):
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
	case errors.As(err, &billingErr):
		apiErrors.WriteError(w, billingErr.Code, billingErr.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
