package httpkit

import (
	"net/http"
	"testing"

	phttp "lunacycle/internal/platform/net/http"
	kit "lunacycle/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestSugar_RegistersVerbs(t *testing.T) {
	type body struct {
		Text string `json:"text" validate:"required"`
	}
	r := phttp.AdaptChi(chi.NewRouter())
	Get(r, "/a", func(*http.Request) (any, error) { return "a", nil })
	GetResponse(r, "/b", func(*http.Request) Response { return Empty(http.StatusOK) })
	PostFlat(r, "/c", func(_ *http.Request, b body) Response { return Created(b.Text) })

	kit.MustStatus(t, kit.Do(t, r.Mux(), http.MethodGet, "/a", ""), http.StatusOK)
	kit.MustStatus(t, kit.Do(t, r.Mux(), http.MethodGet, "/b", ""), http.StatusOK)

	rr := kit.Do(t, r.Mux(), http.MethodPost, "/c", `{"text":"hi"}`)
	kit.MustStatus(t, rr, http.StatusCreated)
	kit.MustContain(t, rr.Body.String(), `"data":"hi"`)

	kit.MustStatus(t, kit.Do(t, r.Mux(), http.MethodPost, "/a", ""), http.StatusMethodNotAllowed)
}
