package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyNotFound   = errors.New("empresa não encontrada")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrGoalNotFound      = errors.New("meta não encontrada")
	ErrForbidden         = errors.New("empresa pertence a outro usuário")
	ErrInvalidData       = errors.New("dados inválidos")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrInvalidDateRange  = errors.New("período inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CatalogError carrega o código de API e o recurso envolvido
type CatalogError struct {
	Err        error
	Code       string
	ResourceID string
	Details    string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCatalogErrorWithID(err error, code string, resourceID string, details string) *CatalogError {
	return &CatalogError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
