// Package flatjson reads and writes a restricted JSON shape: one flat object of
// string, integer or pre-validated enum values.
//
// It is not a JSON parser. Extract does a literal scan for `"key": "` and reads
// up to the next quote that is not preceded by a backslash. Nested objects,
// arrays, non-string values and escapes other than the four Encode emits are
// outside its contract and may come back truncated or wrong.
//
// Encode escapes only backslash, double quote, CR and LF. Tabs and every other
// control character below 0x20 are written raw, so a value carrying them (a
// model reply with a tab, say) produces output that strict JSON decoders reject.
// Extract reads such output back unchanged.
package flatjson

import (
	"strconv"
	"strings"
)

// Extract returns the string value for key and whether it was found
func Extract(text, key string) (string, bool) {
	needle := `"` + key + `"`
	from := 0
	for {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			return "", false
		}
		pos := from + i + len(needle)
		if start, ok := valueStart(text, pos); ok {
			end, ok := valueEnd(text, start)
			if !ok {
				return "", false
			}
			return strings.TrimSpace(unescape(text[start:end])), true
		}
		// key text appeared somewhere that is not a key position, keep scanning
		from = pos
	}
}

// valueStart expects optional spaces, a colon, optional spaces and an opening quote at pos
func valueStart(text string, pos int) (int, bool) {
	pos = skipSpaces(text, pos)
	if pos >= len(text) || text[pos] != ':' {
		return 0, false
	}
	pos = skipSpaces(text, pos+1)
	if pos >= len(text) || text[pos] != '"' {
		return 0, false
	}
	return pos + 1, true
}

func valueEnd(text string, start int) (int, bool) {
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++ // skip whatever follows the backslash
		case '"':
			return i, true
		}
	}
	return 0, false
}

func skipSpaces(text string, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

var (
	escaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", `\r`, "\n", `\n`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`, `\r`, "\r", `\n`, "\n")
)

// Escape escapes backslash, double quote, CR and LF; other control characters pass through
func Escape(s string) string { return escaper.Replace(s) }

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return unescaper.Replace(s)
}

// Field is a single key/value pair of an encoded object
type Field struct {
	Key   string
	Value string
	raw   bool
}

// String is a text field, escaped on encode
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int is an integer field, written unquoted
func Int(key string, n int) Field { return Field{Key: key, Value: strconv.Itoa(n), raw: true} }

// Enum is a quoted value the caller has already validated, written without escaping
func Enum(key, value string) Field { return Field{Key: key, Value: `"` + value + `"`, raw: true} }

// Encode writes fields as a flat object in the given order
func Encode(fields ...Field) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(f.Key)
		b.WriteString(`":`)
		if f.raw {
			b.WriteString(f.Value)
			continue
		}
		b.WriteByte('"')
		b.WriteString(Escape(f.Value))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

// Array joins already encoded objects into a JSON array
func Array(objects ...string) string {
	return "[" + strings.Join(objects, ",") + "]"
}
