package handler

import (
	"net/http"

	"github.com/spf13/cast"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

const defaultSalesLimit = 100

func RecordSale(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		var req domain.CreateSaleRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sales, err := service.RecordSale(r.Context(), companyID, req)
		if err != nil {
			handleError(w, r, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, http.StatusCreated, sales)
	}
}

// ListSales aceita data_inicio e data_fim (YYYY-MM-DD, fim inclusivo) e limit
func ListSales(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.SalesFilter{CompanyID: companyID, Limit: defaultSalesLimit}

		start, err := utils.ParseDate(query.Get("data_inicio"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "data_inicio deve estar no formato YYYY-MM-DD", nil)
			return
		}
		filter.StartDate = start

		end, err := utils.ParseDate(query.Get("data_fim"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "data_fim deve estar no formato YYYY-MM-DD", nil)
			return
		}
		if end != nil {
			exclusive := end.AddDate(0, 0, 1)
			filter.EndDate = &exclusive
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := cast.ToUint64E(raw)
			if err != nil || limit == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			filter.Limit = limit
		}

		sales, err := service.ListSales(r.Context(), filter)
		if err != nil {
			handleError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

func RecordStockEntry(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		var entry domain.StockEntry
		if err := decodeBody(w, r, &entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		entry.ID = ""
		entry.CompanyID = companyID

		created, err := service.RecordStockEntry(r.Context(), companyID, &entry)
		if err != nil {
			handleError(w, r, err, "Erro ao registrar entrada de estoque")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListStockEntries(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		entries, err := service.ListStockEntries(r.Context(), companyID)
		if err != nil {
			handleError(w, r, err, "Erro ao listar entradas de estoque")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
