package http

import (
	"net/http"

	"lunacycle/internal/platform/net/http/bind"
)

// FlatHandler adapts a handler taking a flat JSON body to a platform Handler.
// Bind and validation failures never reach fn
func FlatHandler[T any](fn func(*http.Request, T) Response) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseFlat[T](r)
		if err != nil {
			return Error(err)
		}
		return fn(r, in)
	})
}

// CallHandler calls fn without parsing a request body and envelopes the result.
// A Response returned as the value is written as is
func CallHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
