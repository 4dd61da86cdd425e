package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{name: "sem linhas", err: sql.ErrNoRows, wantIs: ErrNotFound},
		{name: "chave duplicada", err: &pq.Error{Code: "23505", Constraint: "nichos_nome_key"}, wantIs: ErrDuplicate, wantMsg: "23505"},
		{name: "chave estrangeira", err: &pq.Error{Code: "23503"}, wantIs: ErrReferenced, wantMsg: "23503"},
		{name: "outro código do postgres", err: &pq.Error{Code: "42P01", Message: "relation does not exist"}, wantMsg: "42P01"},
		{name: "erro genérico", err: errors.New("conexão recusada"), wantMsg: "conexão recusada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapError("op", tt.err)
			assert.Error(t, got)
			assert.Contains(t, got.Error(), "op: ")
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, got.Error(), tt.wantMsg)
			}
		})
	}

	assert.NoError(t, wrapError("op", nil))
}
