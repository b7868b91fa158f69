package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"lunacycle/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values select the defaults
type StackOptions struct {
	CORS    middleware.CORSOptions
	Slow    time.Duration
	Timeout time.Duration
}

// DefaultTimeout bounds a single request when StackOptions.Timeout is unset
const DefaultTimeout = 30 * time.Second

// CommonStack returns the baseline middleware slice for the root router.
// Preflight sits ahead of routing so OPTIONS answers 204 on every path
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cross-origin
		middleware.Preflight(o.CORS),
		middleware.CORS(o.CORS),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// cache / freshness
		middleware.NoCache(),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
		middleware.Compress(flate.BestSpeed),
	}
}
