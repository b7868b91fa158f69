// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"

	modkit "lunacycle/internal/modkit"
	"lunacycle/internal/modkit/httpkit"
	"lunacycle/internal/modkit/swaggerkit"
	str "lunacycle/internal/platform/strings"

	metahttp "lunacycle/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module. It mounts at the root by default
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithSwagger(true),
	}, opts...)...)

	now := deps.Clock()
	m := &Module{b: b, deps: metahttp.Deps{StartedAt: now(), Now: now}}

	if b.SwaggerOn {
		for _, op := range []swaggerkit.Operation{
			{Path: "/health", Summary: "Liveness check, empty body", Responses: map[string]string{"200": "alive"}},
			{Path: "/version", Summary: "Build and version info", Responses: map[string]string{"200": "envelope with build info"}},
			{Path: "/service", Summary: "Service name and uptime", Responses: map[string]string{"200": "envelope with uptime"}},
		} {
			op.Method = http.MethodGet
			op.Path = b.Prefix + op.Path
			op.Tag = "Meta"
			deps.Docs.Register(swaggerkit.Path(op))
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sr httpkit.Router) { metahttp.Register(sr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
