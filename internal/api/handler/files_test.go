package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/infrastructure/storage"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	catalogmocks "github.com/vfg2006/analytico-api/internal/usecases/catalog/mocks"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestCompanyFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "uploads/emp1/20240320150000-abc.csv", want: "emp1"},
		{key: "relatorios/relatorio-9b2f4c1e-aaaa-bbbb-cccc-1234-k3j4h5g6f7.pdf", want: "9b2f4c1e-aaaa-bbbb-cccc-1234"},
		{key: "relatorios/relatorio-emp1-abcdefghij.pdf", want: "emp1"},
		{key: "uploads/arquivo.csv", want: ""},
		{key: "../etc/passwd", want: ""},
		{key: "relatorios/outro.pdf", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, companyFromKey(tt.key), tt.key)
	}
}

func TestDownloadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := catalogmocks.NewMockCataloger(ctrl)
	store := storage.NewStorage(afero.NewMemMapFs(), "http://localhost:8000/files/")

	_, err := store.Save(context.Background(), "relatorios/relatorio-emp1-abcdefghij.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	t.Run("dono baixa o relatório", func(t *testing.T) {
		ownCompany(companies, "emp1")

		rec := serve(Files(companies, store), client, http.MethodGet, "/files/relatorios/relatorio-emp1-abcdefghij.pdf", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, "%PDF-1.4", rec.Body.String())
	})

	t.Run("arquivo de outra empresa", func(t *testing.T) {
		companies.EXPECT().
			AuthorizeCompany(gomock.Any(), client, "emp2").
			Return(nil, catalog.NewCatalogError(catalog.ErrForbidden, apiErrors.ErrInsufficientPrivilege, ""))

		rec := serve(Files(companies, store), client, http.MethodGet, "/files/uploads/emp2/x.csv", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("arquivo ausente", func(t *testing.T) {
		ownCompany(companies, "emp1")

		rec := serve(Files(companies, store), client, http.MethodGet, "/files/uploads/emp1/nada.csv", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
