// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

const (
	usersTable         = "usuarios"
	companiesTable     = "empresas"
	productsTable      = "produtos"
	salesTable         = "vendas"
	goalsTable         = "metas"
	uploadsTable       = "uploads"
	reportsTable       = "relatorios"
	forecastsTable     = "previsoes"
	stockEntriesTable  = "entradas_estoque"
	subscriptionsTable = "subscriptions"
)

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrDuplicated        = errors.New("registro duplicado")
)

// scanner cobre *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// translateError converte códigos do postgres em erros do repositório
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrDuplicated
		case "22P02":
			// UUID malformado nunca corresponde a um registro
			return ErrNotFound
		case "23514":
			if strings.Contains(pqErr.Constraint, "quantidade_estoque") {
				return ErrInsufficientStock
			}
		}
	}
	return err
}
