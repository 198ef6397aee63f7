package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

func ListProducts(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		products, err := service.ListProducts(r.Context(), companyID)
		if err != nil {
			handleError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func CreateProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		var product domain.Product
		if err := decodeBody(w, r, &product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		product.ID = ""
		product.CompanyID = companyID

		created, err := service.CreateProduct(r.Context(), companyID, &product)
		if err != nil {
			handleError(w, r, err, "Erro ao criar produto")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		var product domain.Product
		if err := decodeBody(w, r, &product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		product.ID = param(r, "id")
		product.CompanyID = companyID

		updated, err := service.UpdateProduct(r.Context(), companyID, &product)
		if err != nil {
			handleError(w, r, err, "Erro ao atualizar produto")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		if err := service.DeleteProduct(r.Context(), companyID, param(r, "id")); err != nil {
			handleError(w, r, err, "Erro ao remover produto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
