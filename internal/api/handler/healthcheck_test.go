package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthcheck(t *testing.T) {
	t.Run("banco disponível", func(t *testing.T) {
		rec := serve(Healthcheck(fakePinger{}, nil), nil, http.MethodGet, "/healthcheck", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
	})

	t.Run("banco indisponível", func(t *testing.T) {
		rec := serve(Healthcheck(fakePinger{err: errors.New("connection refused")}, nil), nil, http.MethodGet, "/healthcheck", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrServiceUnavailable, decodeAPIError(t, rec).Code)
	})

	t.Run("rota de métricas só existe com handler", func(t *testing.T) {
		assert.Len(t, Healthcheck(nil, nil), 1)
		assert.Len(t, Healthcheck(nil, http.NotFoundHandler()), 2)
	})
}
