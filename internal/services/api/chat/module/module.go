// Package module wires the chat bridge into the API using modkit
package module

import (
	"net/http"

	modkit "lunacycle/internal/modkit"
	"lunacycle/internal/modkit/httpkit"
	"lunacycle/internal/modkit/swaggerkit"
	str "lunacycle/internal/platform/strings"
	"lunacycle/internal/services/api/chat/domain"
	chathttp "lunacycle/internal/services/api/chat/http"
	chatsvc "lunacycle/internal/services/api/chat/service"
	cycledomain "lunacycle/internal/services/api/cycle/domain"
)

// Ports are the ports the chat module consumes; pass them with modkit.WithPorts.
// Cycle is optional and lets clients send "last" instead of "cycleDay"
type Ports struct {
	Generator domain.Generator
	Cycle     cycledomain.ServicePort
}

// Module implements the chat module
type Module struct {
	b modkit.Built

	svc *chatsvc.Svc
}

// New constructs the chat module. It panics without a Generator port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("chat"),
		modkit.WithPrefix("/chat"),
		modkit.WithSwagger(true),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	if p.Generator == nil {
		panic("chat module requires Ports{Generator}")
	}

	m := &Module{
		b:   b,
		svc: chatsvc.New(p.Generator, p.Cycle),
	}

	if b.SwaggerOn {
		deps.Docs.Register(swaggerkit.Path(swaggerkit.Operation{
			Method:  http.MethodPost,
			Path:    httpkit.APIPrefix("") + m.Prefix(),
			Tag:     "Chat",
			Summary: "Ask the cycle assistant a question",
			Body:    `{"message":"Why am I so tired?","symptoms":"fatigue","last":"2025-01-01"}`,
			Responses: map[string]string{
				"200": "{id, response}",
				"400": "missing message or bad last date",
				"429": "AI service rate limited",
				"502": "AI service rejected the request",
				"503": "AI service unavailable",
			},
		}))
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sr httpkit.Router) { chathttp.Register(sr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the chat service to other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
