// Package module holds the module contract and the registry that lets one
// module read another module's ports
package module

import (
	phttp "lunacycle/internal/platform/net/http"
)

// Module is what every API module implements. Ports returns the module's port
// bundle (a single interface or a struct of them) or nil
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// MountAll mounts mods on r in argument order. Order matters: a module that sets
// the router's not-found handler must come before the subrouters that inherit it.
// Nil entries are skipped so optional modules can be passed unconditionally
func MountAll(r phttp.Router, mods ...Module) {
	for _, m := range mods {
		if m == nil {
			continue
		}
		m.MountRoutes(r)
	}
}
