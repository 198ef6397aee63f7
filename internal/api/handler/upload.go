package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/internal/usecases/importing"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

// ImportSpreadsheet recebe o arquivo em base64 no corpo JSON
func ImportSpreadsheet(companies catalog.Cataloger, service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ImportRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if _, ok := authorizeCompany(w, r, companies, req.CompanyID); !ok {
			return
		}

		result, err := service.Import(r.Context(), req)
		if err != nil {
			handleError(w, r, err, "Erro ao importar planilha")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
