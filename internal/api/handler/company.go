package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

type CreateCompanyRequest struct {
	Name string  `json:"nome"`
	CNPJ *string `json:"cnpj,omitempty"`
}

func ListCompanies(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		companies, err := service.ListCompanies(r.Context(), claims.UserID)
		if err != nil {
			handleError(w, r, err, "Erro ao listar empresas")
			return
		}

		writeJSON(w, http.StatusOK, companies)
	}
}

func CreateCompany(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req CreateCompanyRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		company, err := service.CreateCompany(r.Context(), claims.UserID, &domain.Company{Name: req.Name, CNPJ: req.CNPJ})
		if err != nil {
			handleError(w, r, err, "Erro ao criar empresa")
			return
		}

		writeJSON(w, http.StatusCreated, company)
	}
}

func GetCompany(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company, ok := authorizeCompany(w, r, service, param(r, "empresa_id"))
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, company)
	}
}

func GetDashboard(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		dashboard, err := service.Dashboard(r.Context(), companyID)
		if err != nil {
			handleError(w, r, err, "Erro ao montar o dashboard")
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}
