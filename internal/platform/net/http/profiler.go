// Package http hosts server adapters. Profiler mounts pprof endpoints when enabled
package http

import (
	stdhttp "net/http"
	"strings"

	"lunacycle/internal/platform/config"
	"lunacycle/internal/platform/logger"

	mw "github.com/go-chi/chi/v5/middleware"
)

// DefaultProfilerPrefix is where pprof lands when PROFILER_PREFIX is unset
const DefaultProfilerPrefix = "/debug"

// MountProfiler mounts chi's pprof routes under PROFILER_PREFIX when cfg
// enables PROFILER (off by default). It reports whether anything was mounted
func MountProfiler(r Router, cfg config.Conf) bool {
	if !cfg.MayBool("PROFILER", false) {
		return false
	}
	prefix := "/" + strings.Trim(cfg.MayString("PROFILER_PREFIX", DefaultProfilerPrefix), "/")
	if prefix == "/" {
		logger.Named("http").Warn().Msg("profiler prefix may not be the root; using default")
		prefix = DefaultProfilerPrefix
	}

	// the profiler router expects paths relative to its own root
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)

	logger.Named("http").Info().Str("prefix", prefix).Msg("profiler mounted")
	return true
}
