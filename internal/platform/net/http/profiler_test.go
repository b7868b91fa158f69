package http_test

import (
	"net/http"
	"testing"

	"lunacycle/internal/platform/config"
	phttp "lunacycle/internal/platform/net/http"
	kit "lunacycle/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestMountProfiler_FromConfig(t *testing.T) {
	cases := []struct {
		name, enabled, prefix string
		mounted               bool
		path                  string
		status                int
	}{
		{"off by default", "", "", false, "/debug/pprof/", http.StatusNotFound},
		{"default prefix", "true", "", true, "/debug/pprof/cmdline", http.StatusOK},
		{"custom prefix", "1", "/ops/", true, "/ops/pprof/", http.StatusOK},
		{"custom prefix moves it", "true", "ops", true, "/debug/pprof/", http.StatusNotFound},
		{"root prefix falls back", "true", "/", true, "/debug/pprof/", http.StatusOK},
		{"explicitly off", "false", "/ops", false, "/ops/pprof/", http.StatusNotFound},
	}
	for _, c := range cases {
		t.Setenv("PROFTEST_PROFILER", c.enabled)
		t.Setenv("PROFTEST_PROFILER_PREFIX", c.prefix)

		r := phttp.AdaptChi(chi.NewRouter())
		if got := phttp.MountProfiler(r, config.New().Prefix("PROFTEST_")); got != c.mounted {
			t.Fatalf("%s: mounted = %v", c.name, got)
		}
		if rr := kit.Do(t, r.Mux(), http.MethodGet, c.path, ""); rr.Code != c.status {
			t.Fatalf("%s: GET %s = %d, want %d", c.name, c.path, rr.Code, c.status)
		}
	}
}
