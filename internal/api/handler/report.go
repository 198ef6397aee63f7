package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/internal/usecases/reporting"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

func GenerateReport(companies catalog.Cataloger, service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.GenerateReportRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if _, ok := authorizeCompany(w, r, companies, req.CompanyID); !ok {
			return
		}

		response, err := service.Generate(r.Context(), req)
		if err != nil {
			handleError(w, r, err, "Erro ao gerar relatório")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func ListReports(companies catalog.Cataloger, service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, companies, companyID); !ok {
			return
		}

		reports, err := service.List(r.Context(), companyID)
		if err != nil {
			handleError(w, r, err, "Erro ao listar relatórios")
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}
