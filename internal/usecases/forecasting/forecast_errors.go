package forecasting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCompany = errors.New("ID da empresa é obrigatório")
	ErrLoadSales      = errors.New("erro ao carregar vendas")
	ErrSaveForecast   = errors.New("erro ao salvar previsões")
)

type ForecastError struct {
	Err       error
	Code      string
	CompanyID string
}

func (e *ForecastError) Error() string {
	if e.CompanyID != "" {
		return fmt.Sprintf("%s (empresa %s)", e.Err.Error(), e.CompanyID)
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func newForecastError(err error, code, companyID string) *ForecastError {
	return &ForecastError{Err: err, Code: code, CompanyID: companyID}
}
