package swaggerkit

import (
	"net/http"
	"strings"

	phttp "lunacycle/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI under base+"/" and the document at base+"/doc.json".
// r is the router base is relative to; public is the externally visible
// path of base, used for redirects and the UI's doc url
func Mount(r phttp.Router, d *Docs, base, public string) {
	if d == nil {
		return
	}
	base = strings.TrimSuffix(base, "/")
	public = strings.TrimSuffix(public, "/")

	// StripSlashes folds base+"/" onto base, so land on index.html directly
	r.Get(base, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, public+"/index.html", http.StatusFound)
	})
	r.Get(base+"/doc.json", d.serveDocJSON())
	r.Handle(base+"/*", httpSwagger.Handler(
		httpSwagger.URL(public+"/doc.json"),
	))
}
