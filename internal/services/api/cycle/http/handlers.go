// Package http provides the cycle endpoint
package http

import (
	stdhttp "net/http"

	"lunacycle/internal/core/cycle"
	"lunacycle/internal/core/flatjson"
	"lunacycle/internal/modkit/httpkit"
	ptime "lunacycle/internal/platform/time"
	"lunacycle/internal/services/api/cycle/domain"
)

// Register mounts the cycle routes on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetResponse(r, "/", h.current)
}

type handlers struct{ svc domain.ServicePort }

// current answers GET /cycle?last=YYYY-MM-DD with a flat JSON object
func (h *handlers) current(r *stdhttp.Request) httpkit.Response {
	res, err := h.svc.Current(r.Context(), domain.Query{Last: r.URL.Query().Get("last")})
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.RawJSON(stdhttp.StatusOK, Encode(res))
}

// Encode renders a result as {last, day, nextPeriod, phase, phaseKey, symptoms}
func Encode(res cycle.Result) string {
	return flatjson.Encode(
		flatjson.String("last", ptime.FormatDate(res.Reference)),
		flatjson.Int("day", res.Day),
		flatjson.String("nextPeriod", ptime.FormatDate(res.NextPeriod)),
		flatjson.Enum("phase", res.Phase.Label()),
		flatjson.Enum("phaseKey", res.Phase.Key()),
		flatjson.String("symptoms", res.Symptoms()),
	)
}
