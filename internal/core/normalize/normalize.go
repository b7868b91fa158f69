// Package normalize cleans user submitted text before it is stored or forwarded
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Remove control characters except newline and tab
// 4 Remove format characters (zero-width joiners, BOM)
// 5 Collapse whitespace and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// controls matches C0/C1 controls and DEL, keeping line breaks and tabs
var controls = runes.Predicate(func(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t'
})

// chains are not safe for concurrent use, so each caller takes one from a pool
var (
	textChains = sync.Pool{New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(controls),
			runes.Remove(runes.In(unicode.Cf)),
		)
	}}
	nameChains = sync.Pool{New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(controls),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold, // fullwidth handles read the same as ASCII ones
		)
	}}
)

func run(pool *sync.Pool, s string) string {
	tr := pool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, strings.ToValidUTF8(s, ""))
	tr.Reset()
	pool.Put(tr)
	if err != nil {
		return ""
	}
	return out
}

// Text normalizes free text such as a post body or chat message.
// Line breaks survive; other whitespace runs collapse to one space
func Text(s string) string {
	if s == "" {
		return s
	}
	return collapseSpaces(run(&textChains, s), true)
}

// Name normalizes a short single-line value such as an author handle
func Name(s string) string {
	if s == "" {
		return s
	}
	return collapseSpaces(run(&nameChains, s), false)
}

// collapseSpaces converts whitespace runs to a single ASCII space. When keepLines
// is set, runs containing a newline collapse to one newline instead
func collapseSpaces(s string, keepLines bool) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS, sawNL := false, false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			sawNL = sawNL || r == '\n'
			continue
		}
		if inWS && b.Len() > 0 {
			if keepLines && sawNL {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		inWS, sawNL = false, false
		b.WriteRune(r)
	}
	return b.String()
}
