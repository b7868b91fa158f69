package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func ok(body string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte(body)) }
}

func serve(r Router, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestAdaptChi_VerbsGroupsAndRoutes(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/cycle", ok("get"))
	r.Head("/cycle", ok(""))
	r.Handle("/std", stdhttp.HandlerFunc(ok("std")))
	r.Group(func(g Router) {
		g.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Group", "1")
				next.ServeHTTP(w, req)
			})
		})
		g.Put("/g", ok("put"))
		g.Patch("/g", ok("patch"))
		g.Delete("/g", ok("delete"))
		g.Group(func(n Router) { n.Get("/g/nested", ok("nested")) })
	})
	r.Route("/api", func(api Router) {
		if api.Mux() == nil {
			t.Fatalf("route Mux() returned nil")
		}
		api.Route("/forum", func(f Router) {
			f.Get("/", ok("list"))
			f.Post("/", ok("create"))
			f.Options("/x", ok("opt"))
			f.Head("/x", ok(""))
			f.Handle("/std", stdhttp.HandlerFunc(ok("fstd")))
		})
	})

	cases := []struct {
		method, path, body string
		header             string
	}{
		{stdhttp.MethodGet, "/cycle", "get", "X-Root"},
		{stdhttp.MethodGet, "/std", "std", "X-Root"},
		{stdhttp.MethodPut, "/g", "put", "X-Group"},
		{stdhttp.MethodPatch, "/g", "patch", "X-Group"},
		{stdhttp.MethodDelete, "/g", "delete", "X-Group"},
		{stdhttp.MethodGet, "/g/nested", "nested", "X-Group"},
		{stdhttp.MethodGet, "/api/forum", "list", "X-Root"},
		{stdhttp.MethodPost, "/api/forum", "create", "X-Root"},
		{stdhttp.MethodOptions, "/api/forum/x", "opt", "X-Root"},
		{stdhttp.MethodGet, "/api/forum/std", "fstd", "X-Root"},
	}
	for _, c := range cases {
		rr := serve(r, c.method, c.path)
		if rr.Code != 200 || rr.Body.String() != c.body {
			t.Fatalf("%s %s => %d %q", c.method, c.path, rr.Code, rr.Body.String())
		}
		if rr.Header().Get(c.header) != "1" {
			t.Fatalf("%s %s missing %s", c.method, c.path, c.header)
		}
	}
	if rr := serve(r, stdhttp.MethodHead, "/api/forum/x"); rr.Code != 200 || rr.Body.Len() != 0 {
		t.Fatalf("HEAD => %d len=%d", rr.Code, rr.Body.Len())
	}
}

func TestAdaptChi_NotFoundInheritedBySubrouters(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.NotFound(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusNotFound)
		_, _ = w.Write([]byte("fallback"))
	})
	r.Route("/api", func(api Router) { api.Get("/chat", ok("chat")) })

	for _, p := range []string{"/nope", "/api/nope", "/api/chat/extra"} {
		rr := serve(r, stdhttp.MethodGet, p)
		if rr.Code != stdhttp.StatusNotFound || rr.Body.String() != "fallback" {
			t.Fatalf("GET %s => %d %q", p, rr.Code, rr.Body.String())
		}
	}
}

func TestAdaptChi_SubrouterNotFound(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Route("/api", func(api Router) {
		api.NotFound(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusTeapot)
		})
		api.Get("/chat", ok("chat"))
	})

	if rr := serve(r, stdhttp.MethodGet, "/api/other"); rr.Code != stdhttp.StatusTeapot {
		t.Fatalf("sub NotFound => %d", rr.Code)
	}
	if rr := serve(r, stdhttp.MethodGet, "/elsewhere"); rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("root default NotFound => %d", rr.Code)
	}
}

func TestAdaptChi_MethodNotAllowed_AllowHeaderEmptyBody(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Route("/cycle", func(c Router) { c.Get("/", ok("x")) })

	rr := serve(r, stdhttp.MethodPost, "/cycle")
	if rr.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("POST /cycle => %d", rr.Code)
	}
	if rr.Header().Get("Allow") != stdhttp.MethodGet {
		t.Fatalf("Allow = %q", rr.Header().Get("Allow"))
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("405 body should be empty, got %q", rr.Body.String())
	}
}
