package modkit

import (
	"net/http"
	"strings"

	"lunacycle/internal/modkit/httpkit"
)

// Built is the resolved option set a module keeps for its lifetime
type Built struct {
	Name string
	// Prefix is "" (mount on the parent itself) or "/segment" without a trailing slash
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool

	// Subrouter may wrap the scoped router; Register adds routes after the module's own
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts in order and fills the hook defaults
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	b := Built{
		Name:      strings.TrimSpace(c.name),
		Prefix:    cleanPrefix(c.prefix),
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// Mount scopes r to Prefix with the module middlewares, passes it through
// Subrouter, then registers own routes followed by the Register hook
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(scoped httpkit.Router) {
		sr := b.Subrouter(scoped)
		own(sr)
		b.Register(sr)
	})
}

// cleanPrefix turns " forum/ " into "/forum"; blank and "/" mean no prefix
func cleanPrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
