package swaggerkit

import (
	"encoding/json"
	"net/http"
	"testing"

	phttp "lunacycle/internal/platform/net/http"
	kit "lunacycle/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func testDocs() *Docs {
	d := New("lunacycle", "dev", "/")
	d.Register(Path(Operation{
		Method:    http.MethodGet,
		Path:      "/cycle",
		Tag:       "Cycle",
		Summary:   "Current cycle day and phase",
		Params:    map[string]string{"last": "YYYY-MM-DD"},
		Responses: map[string]string{"200": "cycle result", "400": "bad date"},
	}))
	d.Register(Path(Operation{
		Method:    http.MethodPost,
		Path:      "/api/forum",
		Summary:   "Create a post",
		Body:      `{"author":"a","content":"b"}`,
		Responses: map[string]string{"201": "created"},
	}))
	d.Register(nil)
	return d
}

func TestDocument_PathsAndDefaults(t *testing.T) {
	spec := testDocs().Document()
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	paths := spec["paths"].(map[string]any)
	get := paths["/cycle"].(map[string]any)["get"].(map[string]any)
	resps := get["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("GET /cycle missing %s response", code)
		}
	}
	if params := get["parameters"].([]any); len(params) != 1 {
		t.Fatalf("params = %v", params)
	}
	post := paths["/api/forum"].(map[string]any)["post"].(map[string]any)
	if _, ok := post["requestBody"]; !ok {
		t.Fatalf("POST /api/forum missing requestBody")
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
}

func TestRegister_NilDocsIsNoop(t *testing.T) {
	var d *Docs
	kit.MustNotPanic(t, func() { d.Register(func(Spec) {}) })
}

func TestMount_ServesDocAndUI(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, testDocs(), "/docs", "/api/docs")

	rr := kit.Do(t, r.Mux(), http.MethodGet, "/docs", "")
	kit.MustStatus(t, rr, http.StatusFound)
	if loc := rr.Header().Get("Location"); loc != "/api/docs/index.html" {
		t.Fatalf("Location = %q", loc)
	}

	rr = kit.Do(t, r.Mux(), http.MethodGet, "/docs/doc.json", "")
	kit.MustStatus(t, rr, http.StatusOK)
	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("doc.json is not JSON: %v", err)
	}
	kit.MustContain(t, rr.Body.String(), `"/cycle"`)

	rr = kit.Do(t, r.Mux(), http.MethodGet, "/docs/index.html", "")
	kit.MustStatus(t, rr, http.StatusOK)
	kit.MustContain(t, rr.Body.String(), "/api/docs/doc.json")
}

func TestMount_NilDocsMountsNothing(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, nil, "/docs", "/api/docs")
	kit.MustStatus(t, kit.Do(t, r.Mux(), http.MethodGet, "/docs/doc.json", ""), http.StatusNotFound)
}
