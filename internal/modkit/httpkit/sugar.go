package httpkit

import (
	"net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetResponse registers a GET handler that builds its own Response
func GetResponse(r Router, path string, h func(*http.Request) Response) {
	r.Get(path, Handle(h))
}

// PostFlat mounts a flat JSON body handler under POST
func PostFlat[T any](r Router, path string, h func(*http.Request, T) Response) {
	r.Post(path, Flat(h))
}
