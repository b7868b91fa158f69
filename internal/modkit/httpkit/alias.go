// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "lunacycle/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Empty returns a header-only response with the given status
func Empty(status int) Response { return phttp.Empty(status) }

// RawJSON writes body verbatim as application/json
func RawJSON(status int, body string) Response { return phttp.RawJSON(status, body) }

// Bytes writes body verbatim with the given content type
func Bytes(status int, contentType string, body []byte) Response {
	return phttp.Bytes(status, contentType, body)
}

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Flat adapts a handler whose input is read from a flat JSON body
func Flat[T any](fn func(*http.Request, T) Response) Handler { return phttp.FlatHandler(fn) }

// Call adapts a handler that takes no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.CallHandler(fn) }

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
