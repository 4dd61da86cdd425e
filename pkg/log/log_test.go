package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx = ContextWithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", GetCorrelationID(ctx))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("correlation_id"))
	assert.True(t, keepInDevelopment("oferta_id"))
	assert.True(t, keepInDevelopment("criativo_id"))
	assert.True(t, keepInDevelopment("criativos_arquivados"))
	assert.False(t, keepInDevelopment("remote_addr"))
}
