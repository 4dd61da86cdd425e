package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound   = errors.New("registro não encontrado")
	ErrDuplicate  = errors.New("registro duplicado")
	ErrReferenced = errors.New("registro referenciado por outra tabela")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// wrapError anexa contexto ao erro do banco, mantendo o código do Postgres na
// mensagem e expondo as violações conhecidas como erros sentinela
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w (código: %s, constraint: %s)", op, ErrDuplicate, pqErr.Code, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w (código: %s, constraint: %s)", op, ErrReferenced, pqErr.Code, pqErr.Constraint)
		}
		return fmt.Errorf("%s: erro no banco de dados: %w (código: %s)", op, pqErr, pqErr.Code)
	}

	return fmt.Errorf("%s: erro ao executar a query: %w", op, err)
}

// affectedOrNotFound converte "nenhuma linha afetada" em ErrNotFound
func affectedOrNotFound(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapError(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
