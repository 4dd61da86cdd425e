package repository

import "strings"

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// prefixColumns qualifica as colunas com o alias da tabela
func prefixColumns(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
