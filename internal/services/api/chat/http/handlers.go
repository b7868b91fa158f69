// Package http provides http transport for the chat bridge
package http

import (
	stdhttp "net/http"

	"lunacycle/internal/core/flatjson"
	"lunacycle/internal/modkit/httpkit"
	"lunacycle/internal/services/api/chat/domain"
)

// Register mounts chat endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostFlat(r, "/", h.ask)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) ask(r *stdhttp.Request, in domain.AskInput) httpkit.Response {
	reply, err := h.svc.Ask(r.Context(), in)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.RawJSON(stdhttp.StatusOK, flatjson.Encode(
		flatjson.Enum("id", reply.ID),
		flatjson.String("response", reply.Response),
	))
}
