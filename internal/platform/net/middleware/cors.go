package middleware

import (
	"net/http"
	"strconv"
	"strings"

	pstrings "lunacycle/internal/platform/strings"

	chicors "github.com/go-chi/cors"
)

// Defaults advertised to browsers. The API is a public demo and answers any origin
var (
	DefaultCORSMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	DefaultCORSHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
)

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// Preflight answers every OPTIONS request with 204 and the allow headers,
// whether or not the browser sent Origin. Every other response is stamped
// with Access-Control-Allow-Origin: *
func Preflight(o CORSOptions) func(http.Handler) http.Handler {
	methods := strings.Join(pstrings.IfEmpty(o.AllowedMethods, DefaultCORSMethods), ", ")
	headers := strings.Join(pstrings.IfEmpty(o.AllowedHeaders, DefaultCORSHeaders), ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if o.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(o.MaxAge))
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// CORS wraps go-chi/cors for actual (non-preflight) requests
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, DefaultCORSMethods),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, DefaultCORSHeaders),
		ExposedHeaders: pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
