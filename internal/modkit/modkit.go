package modkit

import "lunacycle/internal/modkit/module"

// Module is the common surface for API modules that can mount routes and expose ports
// it aliases module.Module so service packages can depend on either
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules typically expose New(deps Deps, opts ...Option) Module and may delegate to this pattern
type Builder func(Deps, ...Option) Module
