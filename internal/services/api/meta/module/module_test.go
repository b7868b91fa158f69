package module

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	modkit "lunacycle/internal/modkit"
	"lunacycle/internal/modkit/swaggerkit"
	phttp "lunacycle/internal/platform/net/http"
	kit "lunacycle/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func mount(t *testing.T, deps modkit.Deps, opts ...modkit.Option) http.Handler {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	New(deps, opts...).MountRoutes(r)
	return r.Mux()
}

func TestHealth_EmptyOK(t *testing.T) {
	rr := kit.Do(t, mount(t, modkit.Deps{}), http.MethodGet, "/health", "")
	kit.MustStatus(t, rr, http.StatusOK)
	if rr.Body.Len() != 0 {
		t.Fatalf("health body = %q", rr.Body.String())
	}
}

func TestVersion_Envelope(t *testing.T) {
	rr := kit.Do(t, mount(t, modkit.Deps{}), http.MethodGet, "/version", "")
	kit.MustStatus(t, rr, http.StatusOK)

	var env struct {
		Data struct {
			Service     string `json:"service"`
			CycleLength int    `json:"cycle_length"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Service != "lunacycle-api" || env.Data.CycleLength != 28 {
		t.Fatalf("unexpected build info: %+v", env.Data)
	}
}

func TestService_UptimeFromClock(t *testing.T) {
	at := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	calls := 0
	now := func() time.Time {
		calls++
		return at.Add(time.Duration(calls-1) * time.Minute)
	}
	rr := kit.Do(t, mount(t, modkit.Deps{Now: now}), http.MethodGet, "/service", "")
	kit.MustStatus(t, rr, http.StatusOK)
	kit.MustContain(t, rr.Body.String(), `"uptime":60`)
	kit.MustContain(t, rr.Body.String(), `"started":"2025-05-01T10:00:00Z"`)
}

func TestNew_DocumentsOperations(t *testing.T) {
	docs := swaggerkit.New("lunacycle", "dev", "/")
	_ = New(modkit.Deps{Docs: docs})
	paths := docs.Document()["paths"].(map[string]any)
	for _, p := range []string{"/health", "/version", "/service"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("%s not documented", p)
		}
	}

	off := swaggerkit.New("lunacycle", "dev", "/")
	_ = New(modkit.Deps{Docs: off}, modkit.WithSwagger(false))
	if n := len(off.Document()["paths"].(map[string]any)); n != 0 {
		t.Fatalf("swagger off should document nothing, got %d paths", n)
	}
}
