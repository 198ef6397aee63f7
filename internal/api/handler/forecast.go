package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/internal/usecases/alerting"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/internal/usecases/forecasting"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

type CompanyRequest struct {
	CompanyID string `json:"empresa_id"`
}

func GenerateForecast(companies catalog.Cataloger, service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompanyRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if _, ok := authorizeCompany(w, r, companies, req.CompanyID); !ok {
			return
		}

		result, err := service.Generate(r.Context(), req.CompanyID)
		if err != nil {
			handleError(w, r, err, "Erro ao gerar previsão de vendas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListForecasts(companies catalog.Cataloger, service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, companies, companyID); !ok {
			return
		}

		forecasts, err := service.List(r.Context(), companyID)
		if err != nil {
			handleError(w, r, err, "Erro ao listar previsões")
			return
		}

		writeJSON(w, http.StatusOK, forecasts)
	}
}

// ListAlerts recalcula os alertas; o filtro opcional vem em ?tipo=
func ListAlerts(companies catalog.Cataloger, service alerting.Alerter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, companies, companyID); !ok {
			return
		}

		alerts, err := service.List(r.Context(), companyID, r.URL.Query().Get("tipo"))
		if err != nil {
			handleError(w, r, err, "Erro ao gerar alertas")
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}
