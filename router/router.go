package router

import (
	"github.com/shravanasati/minihttp/files"
	"github.com/shravanasati/minihttp/request"
	"github.com/shravanasati/minihttp/response"
	"github.com/shravanasati/minihttp/server"
)

// Params holds the path segments captured by a route's wildcard.
type Params map[string]string

// Handler handles a matched route. dir is nil when no directory is configured.
type Handler func(r *request.Request, params Params, dir files.Dir) (*response.Response, error)

var defaultNotFoundHandler Handler = func(r *request.Request, _ Params, _ files.Dir) (*response.Response, error) {
	return response.NewStatusResponse(response.StatusNotFound), nil
}

type Middleware func(server.Handler) server.Handler

type route struct {
	verb    request.Verb
	pattern pattern
	handler Handler
}

// Router is an ordered route table. Routes are tried in registration order
// and the first one matching both verb and path handles the request.
type Router struct {
	routes          []route
	notFoundHandler Handler
	middlewares     []Middleware
}

// Creates a new router.
func NewRouter() *Router {
	return &Router{
		notFoundHandler: defaultNotFoundHandler,
		middlewares:     []Middleware{},
	}
}

// Add registers a route. Paths are exact unless they end in a named
// wildcard, eg. /files/*name, which matches any path with that prefix.
func (r *Router) Add(verb request.Verb, path string, handler Handler) {
	r.routes = append(r.routes, route{verb: verb, pattern: compilePattern(path), handler: handler})
}

// Get registers a new GET route.
func (r *Router) Get(path string, handler Handler) {
	r.Add(request.GET, path, handler)
}

// Post registers a new POST route.
func (r *Router) Post(path string, handler Handler) {
	r.Add(request.POST, path, handler)
}

// NotFound sets the handler for when no route is found.
func (r *Router) NotFound(handler Handler) {
	r.notFoundHandler = handler
}

// Use adds middleware to the router.
func (r *Router) Use(m ...Middleware) {
	r.middlewares = append(r.middlewares, m...)
}

func (r *Router) chain(h server.Handler) server.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}
	return h
}

// Dispatch runs the first route matching the request, or the not found handler.
func (r *Router) Dispatch(req *request.Request, dir files.Dir) (*response.Response, error) {
	for _, rt := range r.routes {
		if rt.verb != req.Verb {
			continue
		}
		if params, ok := rt.pattern.match(req.Path); ok {
			return rt.handler(req, params, dir)
		}
	}

	return r.notFoundHandler(req, Params{}, dir)
}

// Handler returns a server.Handler that dispatches against dir, wrapped
// in the router's middleware chain.
func (r *Router) Handler(dir files.Dir) server.Handler {
	routingHandler := func(req *request.Request) (*response.Response, error) {
		return r.Dispatch(req, dir)
	}

	return r.chain(routingHandler)
}
