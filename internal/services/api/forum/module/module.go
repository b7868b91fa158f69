// Package module wires the forum into the API using modkit
package module

import (
	"net/http"

	modkit "lunacycle/internal/modkit"
	"lunacycle/internal/modkit/httpkit"
	"lunacycle/internal/modkit/swaggerkit"
	str "lunacycle/internal/platform/strings"
	"lunacycle/internal/services/api/forum/domain"
	forumhttp "lunacycle/internal/services/api/forum/http"
	forumrepo "lunacycle/internal/services/api/forum/repo"
	forumsvc "lunacycle/internal/services/api/forum/service"
)

// Module implements the forum module
type Module struct {
	b modkit.Built

	svc *forumsvc.Svc
}

// New constructs the forum module with an in-memory store seeded with the welcome posts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("forum"),
		modkit.WithPrefix("/forum"),
		modkit.WithSwagger(true),
	}, opts...)...)

	svc := forumsvc.New(forumrepo.NewMemory(), deps.Clock(), deps.Location())
	svc.Seed(forumsvc.Welcome...)

	m := &Module{
		b:   b,
		svc: svc,
	}

	if b.SwaggerOn {
		path := httpkit.APIPrefix("") + m.Prefix()
		deps.Docs.Register(swaggerkit.Path(swaggerkit.Operation{
			Method:    http.MethodGet,
			Path:      path,
			Tag:       "Forum",
			Summary:   "All posts in creation order",
			Responses: map[string]string{"200": "array of {id, author, content, timestamp}"},
		}))
		deps.Docs.Register(swaggerkit.Path(swaggerkit.Operation{
			Method:  http.MethodPost,
			Path:    path,
			Tag:     "Forum",
			Summary: "Create a post",
			Body:    `{"author":"Early Bird","content":"Any tips for day 8?"}`,
			Responses: map[string]string{
				"201": "created post",
				"400": "missing author or content",
			},
		}))
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sr httpkit.Router) { forumhttp.Register(sr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the forum service to other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
