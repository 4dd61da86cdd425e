package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithRouteMiddleware aplica a todas as rotas adicionadas depois dele um
	// middleware que conhece o método e o caminho declarado da rota
	WithRouteMiddleware = func(mw RouteMiddleware) ConfigRouter {
		return func(router *Router) {
			router.routeMiddlewares = append(router.routeMiddlewares, mw)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

// RouteMiddleware constrói um middleware a partir do método e do caminho da rota
type RouteMiddleware func(method, path string) func(http.Handler) http.Handler

type Router struct {
	router           *httprouter.Router
	routeMiddlewares []RouteMiddleware
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// NotFound define o handler das rotas inexistentes
func (r *Router) NotFound(h http.Handler) {
	r.router.NotFound = h
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		// Middlewares por rota envolvem os específicos
		for i := len(r.routeMiddlewares) - 1; i >= 0; i-- {
			handler = r.routeMiddlewares[i](route.Method, route.Path)(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
