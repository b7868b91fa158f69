// Package domain holds the static file port
package domain

// IndexFile is served for the site root
const IndexFile = "/index.html"

// LookupPort resolves a request path to a file under the public dir
type LookupPort interface {
	Lookup(path string) (body []byte, contentType string, err error)
}
