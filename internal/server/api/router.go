package api

import (
	"context"
	"log/slog"
	"strings"
)

// Request contains route parameters and the raw payload.
type Request struct {
	Ctx     context.Context
	Params  map[string]string
	Payload string
}

// Response holds the JSON line to return. Empty means success without a
// body.
type Response struct {
	JSON string
}

// HandlerFunc processes a request. The logger is scoped to the connection.
type HandlerFunc func(req *Request, res *Response, logger *slog.Logger) error

// Router matches lower-case paths against patterns with {name} segments.
type Router struct {
	routes []routeEntry
}

type routeEntry struct {
	pattern string
	parts   []string
	names   []string
	handler HandlerFunc
}

func NewRouter() *Router { return &Router{} }

// Register adds a handler for a pattern like "button/{button}".
func (r *Router) Register(pattern string, handler HandlerFunc) {
	orig := strings.Split(pattern, "/")
	e := routeEntry{
		pattern: strings.ToLower(pattern),
		parts:   make([]string, len(orig)),
		names:   make([]string, len(orig)),
		handler: handler,
	}
	for i, p := range orig {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			e.names[i] = p[1 : len(p)-1]
			continue
		}
		e.parts[i] = strings.ToLower(p)
	}
	r.routes = append(r.routes, e)
}

// Patterns lists the registered patterns in registration order.
func (r *Router) Patterns() []string {
	out := make([]string, len(r.routes))
	for i, rt := range r.routes {
		out[i] = rt.pattern
	}
	return out
}

// Match returns the handler and parameters for path, or nil.
func (r *Router) Match(path string) (HandlerFunc, map[string]string) {
	parts := strings.Split(strings.ToLower(path), "/")
	for _, rt := range r.routes {
		if len(rt.parts) != len(parts) {
			continue
		}
		params := map[string]string{}
		ok := true
		for i, p := range parts {
			if rt.names[i] != "" {
				params[rt.names[i]] = p
				continue
			}
			if rt.parts[i] != p {
				ok = false
				break
			}
		}
		if ok {
			return rt.handler, params
		}
	}
	return nil, nil
}
