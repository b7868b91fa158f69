// Package testkit provides testing helpers shared by every package's tests
package testkit

import (
	"strings"
	"sync"
	"testing"
)

// MustPanic asserts that fn panics and returns the recovered value
func MustPanic(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	if recovered == nil {
		t.Fatalf("expected panic, got none")
	}
	return recovered
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// maxShown caps how much of a haystack ends up in a failure message
const maxShown = 512

// MustContain asserts that haystack contains needle
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if len(shown) > maxShown {
		shown = shown[:maxShown] + "..."
	}
	t.Fatalf("expected %q in %d bytes of output:\n%s", needle, len(haystack), shown)
}

var seamMu sync.Mutex

// Swap points *target at replacement until the test ends and returns the
// original, so a replacement can wrap the real value
func Swap[T any](t *testing.T, target *T, replacement T) (orig T) {
	t.Helper()
	orig = *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
	return orig
}

// Serial holds a package-wide lock for the rest of the test. Tests that Swap
// shared seams call it so parallel tests never see each other's replacements
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
