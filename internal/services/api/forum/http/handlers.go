// Package http provides http transport for the forum
package http

import (
	stdhttp "net/http"

	"lunacycle/internal/core/flatjson"
	"lunacycle/internal/modkit/httpkit"
	"lunacycle/internal/services/api/forum/domain"
)

// Register mounts forum endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.GetResponse(r, "/", h.list)
	httpkit.PostFlat(r, "/", h.create)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) list(r *stdhttp.Request) httpkit.Response {
	posts := h.svc.List(r.Context())
	objs := make([]string, 0, len(posts))
	for _, p := range posts {
		objs = append(objs, Encode(p))
	}
	return httpkit.RawJSON(stdhttp.StatusOK, flatjson.Array(objs...))
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) httpkit.Response {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.RawJSON(stdhttp.StatusCreated, Encode(p))
}

// Encode renders a post as {id, author, content, timestamp}
func Encode(p domain.Post) string {
	return flatjson.Encode(
		flatjson.Int("id", p.ID),
		flatjson.String("author", p.Author),
		flatjson.String("content", p.Content),
		flatjson.Enum("timestamp", p.Timestamp),
	)
}
