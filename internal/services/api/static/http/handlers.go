// Package http serves the public dir as the router's not-found fallback
package http

import (
	stdhttp "net/http"

	"lunacycle/internal/modkit/httpkit"
	perr "lunacycle/internal/platform/errors"
	"lunacycle/internal/services/api/static/domain"
)

// Register installs the fallback on r. Subrouters mounted after it inherit it
func Register(r httpkit.Router, s domain.LookupPort) {
	r.NotFound(Fallback(s))
}

// Fallback serves files for GET and HEAD; every other method gets a JSON 404
func Fallback(s domain.LookupPort) httpkit.Handler {
	return httpkit.Handle(func(r *stdhttp.Request) httpkit.Response {
		if r.Method != stdhttp.MethodGet && r.Method != stdhttp.MethodHead {
			return httpkit.Error(perr.NotFoundf("route not found"))
		}
		body, ct, err := s.Lookup(r.URL.Path)
		if err != nil {
			return httpkit.Error(err)
		}
		if r.Method == stdhttp.MethodHead {
			body = nil
		}
		return httpkit.Bytes(stdhttp.StatusOK, ct, body)
	})
}
