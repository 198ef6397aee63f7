package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("ID da empresa e período são obrigatórios")
	ErrInvalidPeriod       = errors.New(`período deve ser "semanal" ou "mensal"`)
	ErrCompanyNotFound     = errors.New("empresa não encontrada")
	ErrRender              = errors.New("erro ao gerar PDF")
	ErrStorage             = errors.New("erro ao armazenar relatório")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

type ReportError struct {
	Err       error
	Code      string
	CompanyID string
	Details   string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code string, companyID string, details string) *ReportError {
	return &ReportError{
		Err:       baseErr,
		Code:      code,
		CompanyID: companyID,
		Details:   details,
	}
}
