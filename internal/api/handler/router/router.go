package router

import (
	"fmt"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"

	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

// Route descreve um endpoint e os middlewares aplicados somente a ele.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []alice.Constructor
}

// Router encapsula o httprouter com respostas de erro no formato da API.
type Router struct {
	mux        *httprouter.Router
	registered []string
}

type ConfigRouter func(router *Router)

// WithRoutes registra as rotas na raiz.
func WithRoutes(routes ...Route) ConfigRouter {
	return WithGroup("", routes...)
}

// WithGroup registra as rotas sob um prefixo comum, como a versão da API.
func WithGroup(prefix string, routes ...Route) ConfigRouter {
	return func(router *Router) {
		for _, route := range routes {
			route.Path = joinPath(prefix, route.Path)
			router.AddRoutes(route)
		}
	}
}

func New(configs ...ConfigRouter) *Router {
	router := &Router{mux: httprouter.New()}

	router.mux.HandleMethodNotAllowed = true
	router.mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", r.URL.Path)
	})
	router.mux.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", r.Method)
	})

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registra as rotas envolvendo o handler com os middlewares na
// ordem declarada: o primeiro da lista é o mais externo.
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, alice.New(route.Middlewares...).Then(route.Handler))
		r.registered = append(r.registered, fmt.Sprintf("%s %s", route.Method, route.Path))
	}
}

// Routes lista as rotas registradas como "MÉTODO caminho", em ordem alfabética.
func (r *Router) Routes() []string {
	routes := append([]string(nil), r.registered...)
	sort.Strings(routes)
	return routes
}

func joinPath(prefix, routePath string) string {
	if prefix == "" {
		return routePath
	}

	return path.Join("/", strings.Trim(prefix, "/"), routePath)
}
