package handler

import (
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/vfg2006/analytico-api/infrastructure/storage"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
)

// companyFromKey extrai a empresa dona do arquivo armazenado:
// uploads/<empresa>/<arquivo> ou relatorios/relatorio-<empresa>-<id>.pdf
func companyFromKey(key string) string {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	dir, file := path.Split(key)

	switch {
	case strings.HasPrefix(dir, "uploads/"):
		parts := strings.Split(strings.TrimSuffix(dir, "/"), "/")
		if len(parts) == 2 {
			return parts[1]
		}
	case dir == "relatorios/" && strings.HasPrefix(file, "relatorio-"):
		name := strings.TrimSuffix(strings.TrimPrefix(file, "relatorio-"), path.Ext(file))
		if i := strings.LastIndex(name, "-"); i > 0 {
			return name[:i]
		}
	}
	return ""
}

// DownloadFile entrega uploads e relatórios apenas para quem tem acesso à empresa
func DownloadFile(companies catalog.Cataloger, store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(param(r, "filepath"), "/")

		companyID := companyFromKey(key)
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Arquivo não encontrado", nil)
			return
		}
		if _, ok := authorizeCompany(w, r, companies, companyID); !ok {
			return
		}

		content, err := store.Read(r.Context(), key)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("key", key).Warn("Arquivo não encontrado no storage")
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Arquivo não encontrado", nil)
			return
		}

		contentType := mime.TypeByExtension(path.Ext(key))
		if contentType == "" {
			contentType = http.DetectContentType(content)
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `inline; filename="`+path.Base(key)+`"`)
		if _, err := w.Write(content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar arquivo")
		}
	}
}
