// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"lunacycle/internal/core/cycle"
	"lunacycle/internal/core/version"
	"lunacycle/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	StartedAt time.Time
	Now       func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.GetResponse(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// health is a liveness check: 200 with no body
func (h *handlers) health(_ *http.Request) httpkit.Response {
	return httpkit.Empty(http.StatusOK)
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(cycle.Length), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    version.Info(cycle.Length).Service,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
