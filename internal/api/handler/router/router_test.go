package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutes(t *testing.T) {
	var order []string
	var seenRoute string

	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithRouteMiddleware(func(method, path string) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seenRoute = method + " " + path
					order = append(order, "rota")
					next.ServeHTTP(w, r)
				})
			}
		}),
		WithRoutes(Route{
			Path:        "/v1/offers/:id",
			Method:      http.MethodGet,
			Middlewares: []func(http.Handler) http.Handler{tag("a"), tag("b")},
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
			}),
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/offers/of1", nil))

	assert.Equal(t, "of1", rec.Body.String())
	assert.Equal(t, "GET /v1/offers/:id", seenRoute)
	assert.Equal(t, []string{"rota", "a", "b", "handler"}, order)
}

func TestRouter_NotFound(t *testing.T) {
	rt := New()
	rt.NotFound(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nada", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
