package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScripts_UpAndDownPairs(t *testing.T) {
	ups, err := fs.Glob(scripts, "sql/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(scripts, "sql/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestScripts_CreateDashboardTables(t *testing.T) {
	content, err := fs.ReadFile(scripts, "sql/000001_create_tables.up.sql")
	require.NoError(t, err)

	for _, table := range []string{
		"ofertas", "criativos", "metricas_diarias", "metricas_diarias_oferta",
		"nichos", "copywriters", "paises", "criativos_com_medias",
	} {
		assert.Contains(t, string(content), table)
	}
}
