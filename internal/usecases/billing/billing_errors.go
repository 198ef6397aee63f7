package billing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios não fornecidos")
	ErrInvalidPlan         = errors.New("plano inválido")
	ErrProvider            = errors.New("erro no provedor de pagamento")
	ErrInvalidSignature    = errors.New("assinatura do webhook inválida")
	ErrMissingUserMetadata = errors.New("user_id ausente nos metadados da sessão")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

type BillingError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BillingError) Unwrap() error {
	return e.Err
}

func NewBillingError(baseErr error, code string, details string) *BillingError {
	return &BillingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserBillingError(baseErr error, code string, userID int, details string) *BillingError {
	return &BillingError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
