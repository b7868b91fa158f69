package testkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// Do serves one request against h and returns the recorder
// body may be empty; headers are given as key, value pairs
func Do(t *testing.T, h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// MustStatus fails the test when rr.Code differs from want, printing the body
func MustStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d; body=%q", rr.Code, want, rr.Body.String())
	}
}

// Clock returns a now func frozen at the given UTC date and hour
func Clock(year int, month time.Month, day, hour int) func() time.Time {
	at := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}
