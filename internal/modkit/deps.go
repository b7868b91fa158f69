// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"lunacycle/internal/modkit/swaggerkit"
	"lunacycle/internal/platform/config"
	"lunacycle/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	// Log is the parent logger; nil means the process root logger
	Log *logger.Logger
	Cfg config.Conf

	// Now is the wall clock; nil means time.Now
	Now func() time.Time
	// Loc is the zone "today" is computed in; nil means time.Local
	Loc *time.Location
	// Docs collects module operations for the swagger UI; nil disables docs
	Docs *swaggerkit.Docs
}

// Clock returns Now or time.Now when unset
func (d Deps) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Location returns Loc or time.Local when unset
func (d Deps) Location() *time.Location {
	if d.Loc != nil {
		return d.Loc
	}
	return time.Local
}

// Logger returns a child of Log tagged with component
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	l := d.Log.With().Str("component", component).Logger()
	return &l
}
