package importing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("campos obrigatórios ausentes")
	ErrInvalidFileType     = errors.New("tipo de arquivo não suportado")
	ErrInvalidKind         = errors.New("tipo de importação inválido")
	ErrInvalidContent      = errors.New("conteúdo do arquivo inválido")
	ErrNoValidRows         = errors.New("nenhuma linha válida para importar")
	ErrStorage             = errors.New("erro ao armazenar arquivo")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

type ImportError struct {
	Err       error
	Code      string
	CompanyID string
	Details   string
	RowErrors []string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(baseErr error, code string, companyID string, details string) *ImportError {
	return &ImportError{
		Err:       baseErr,
		Code:      code,
		CompanyID: companyID,
		Details:   details,
	}
}
