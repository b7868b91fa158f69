// Package swaggerkit assembles the OpenAPI document from module contributions
// and serves it next to the swagger UI
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// Spec is a decoded OpenAPI document
type Spec = map[string]any

// SpecMutator lets a module add or tweak paths before the doc is served
type SpecMutator func(Spec)

// Docs collects mutators and renders the document on demand
type Docs struct {
	mu       sync.RWMutex
	title    string
	version  string
	server   string
	mutators []SpecMutator
}

// New returns an empty document with the given info block and server url
func New(title, version, server string) *Docs {
	return &Docs{title: title, version: version, server: server}
}

// Register adds a spec mutator; nil is ignored
func (d *Docs) Register(m SpecMutator) {
	if d == nil || m == nil {
		return
	}
	d.mu.Lock()
	d.mutators = append(d.mutators, m)
	d.mu.Unlock()
}

// Document builds a fresh spec, applies every mutator in registration order,
// then fills in the shared error responses
func (d *Docs) Document() Spec {
	spec := Spec{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": d.title, "version": d.version},
		"servers": []any{map[string]any{"url": d.server}},
		"paths":   map[string]any{},
	}
	d.mu.RLock()
	for _, m := range d.mutators {
		m(spec)
	}
	d.mu.RUnlock()

	ensureErrorResponseDefinition(spec)
	addDefaultError(spec)
	return spec
}

func (d *Docs) serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(d.Document())
	}
}

// Operation describes one path + method entry
type Operation struct {
	Method  string
	Path    string
	Tag     string
	Summary string
	// Params are query parameters, name -> description
	Params map[string]string
	// Body is an example request body; empty means none
	Body string
	// Responses maps status code to description
	Responses map[string]string
}

// Path returns a mutator that adds op to the spec paths
func Path(op Operation) SpecMutator {
	return func(spec Spec) {
		paths, ok := spec["paths"].(map[string]any)
		if !ok {
			paths = map[string]any{}
			spec["paths"] = paths
		}
		node, ok := paths[op.Path].(map[string]any)
		if !ok {
			node = map[string]any{}
			paths[op.Path] = node
		}

		resps := map[string]any{}
		for code, desc := range op.Responses {
			resps[code] = map[string]any{"description": desc}
		}
		entry := map[string]any{
			"summary":   op.Summary,
			"responses": resps,
		}
		if op.Tag != "" {
			entry["tags"] = []any{op.Tag}
		}
		if len(op.Params) > 0 {
			params := make([]any, 0, len(op.Params))
			for name, desc := range op.Params {
				params = append(params, map[string]any{
					"name":        name,
					"in":          "query",
					"description": desc,
					"schema":      map[string]any{"type": "string"},
				})
			}
			entry["parameters"] = params
		}
		if op.Body != "" {
			entry["requestBody"] = map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema":  map[string]any{"type": "object"},
						"example": json.RawMessage(op.Body),
					},
				},
			}
		}
		node[strings.ToLower(op.Method)] = entry
	}
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec Spec) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultError injects a 500 into every operation that lacks one
func addDefaultError(spec Spec) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses["500"]; !exists {
				responses["500"] = errResp
			}
		}
	}
}
