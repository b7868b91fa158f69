// Package module wires the cycle endpoint into the API using modkit
package module

import (
	"net/http"

	modkit "lunacycle/internal/modkit"
	"lunacycle/internal/modkit/httpkit"
	"lunacycle/internal/modkit/swaggerkit"
	str "lunacycle/internal/platform/strings"
	"lunacycle/internal/services/api/cycle/domain"
	cyclehttp "lunacycle/internal/services/api/cycle/http"
	cyclesvc "lunacycle/internal/services/api/cycle/service"
)

// Module implements the cycle module
type Module struct {
	b modkit.Built

	svc *cyclesvc.Svc
}

// New constructs the cycle module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("cycle"),
		modkit.WithPrefix("/cycle"),
		modkit.WithSwagger(true),
	}, opts...)...)

	m := &Module{
		b:   b,
		svc: cyclesvc.New(deps.Clock(), deps.Location()),
	}

	if b.SwaggerOn {
		deps.Docs.Register(swaggerkit.Path(swaggerkit.Operation{
			Method:  http.MethodGet,
			Path:    m.Prefix(),
			Tag:     "Cycle",
			Summary: "Cycle day, phase and next period for a last period date",
			Params:  map[string]string{"last": "last period start, YYYY-MM-DD; defaults to 10 days ago"},
			Responses: map[string]string{
				"200": "flat object {last, day, nextPeriod, phase, phaseKey, symptoms}",
				"400": "last is not a valid date",
				"405": "method not allowed",
			},
		}))
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sr httpkit.Router) { cyclehttp.Register(sr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the cycle service to other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
