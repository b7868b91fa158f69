package http

import (
	"net/http"
	"testing"

	"lunacycle/internal/core/flatjson"
	perr "lunacycle/internal/platform/errors"
	phttp "lunacycle/internal/platform/net/http"
	kit "lunacycle/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type files map[string]string

func (f files) Lookup(p string) ([]byte, string, error) {
	if p == "/" {
		p = "/index.html"
	}
	body, ok := f[p]
	if !ok {
		return nil, "", perr.NotFoundf("file not found")
	}
	return []byte(body), "text/html; charset=utf-8", nil
}

func mount(t *testing.T) http.Handler {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, files{"/index.html": "<p>home</p>"})
	r.Route("/api", func(api phttp.Router) {
		api.Get("/known", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	})
	return r.Mux()
}

func TestFallback_ServesFiles(t *testing.T) {
	h := mount(t)
	rr := kit.Do(t, h, http.MethodGet, "/", "")
	kit.MustStatus(t, rr, http.StatusOK)
	if rr.Body.String() != "<p>home</p>" || rr.Header().Get("Content-Type") != "text/html; charset=utf-8" {
		t.Fatalf("got %q %q", rr.Body.String(), rr.Header().Get("Content-Type"))
	}

	head := kit.Do(t, h, http.MethodHead, "/index.html", "")
	kit.MustStatus(t, head, http.StatusOK)
	if head.Body.Len() != 0 {
		t.Fatalf("HEAD body = %q", head.Body.String())
	}
}

func TestFallback_NotFound(t *testing.T) {
	h := mount(t)
	cases := []struct{ method, path, msg string }{
		{http.MethodGet, "/missing.png", "file not found"},
		{http.MethodPost, "/nowhere", "route not found"},
		{http.MethodDelete, "/", "route not found"},
		{http.MethodGet, "/api/unknown", "file not found"},
	}
	for _, c := range cases {
		rr := kit.Do(t, h, c.method, c.path, "")
		kit.MustStatus(t, rr, http.StatusNotFound)
		if got, _ := flatjson.Extract(rr.Body.String(), "error"); got != c.msg {
			t.Fatalf("%s %s: error = %q", c.method, c.path, got)
		}
	}
}
