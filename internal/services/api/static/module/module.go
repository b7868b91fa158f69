// Package module wires the static fallback into the API using modkit
package module

import (
	"net/http"

	modkit "lunacycle/internal/modkit"
	"lunacycle/internal/modkit/httpkit"
	str "lunacycle/internal/platform/strings"
	"lunacycle/internal/services/api/static/domain"
	statichttp "lunacycle/internal/services/api/static/http"
	staticsvc "lunacycle/internal/services/api/static/service"
)

// Module implements the static module. It owns no routes of its own; MountRoutes
// installs the not-found fallback, so mount it before anything else
type Module struct {
	name string
	mws  []func(http.Handler) http.Handler
	svc  *staticsvc.Svc
}

// New constructs the static module; the public dir comes from PUBLIC_DIR in deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("static")}, opts...)...)
	m := &Module{
		name: b.Name,
		mws:  b.Mw,
		svc:  staticsvc.New(deps.Cfg.MayString("PUBLIC_DIR", staticsvc.DefaultDir)),
	}
	deps.Logger("static").Debug().Str("dir", m.svc.Dir()).Msg("static fallback")
	return m
}

// MountRoutes installs the fallback on r
func (m *Module) MountRoutes(r httpkit.Router) {
	var lookup domain.LookupPort = m.svc
	fb := statichttp.Fallback(lookup)
	for i := len(m.mws) - 1; i >= 0; i-- {
		fb = m.mws[i](http.HandlerFunc(fb)).ServeHTTP
	}
	r.NotFound(fb)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports exposes the lookup port
func (m *Module) Ports() any { return domain.LookupPort(m.svc) }
