// Package domain holds the cycle query contract shared by transport and service
package domain

import (
	"context"

	"lunacycle/internal/core/cycle"
)

// DefaultLookback is how many days before today a missing reference defaults to
const DefaultLookback = 10

// Query is the cycle lookup input. Last is the last period start as YYYY-MM-DD;
// empty selects today minus DefaultLookback
type Query struct {
	Last string `json:"last" validate:"omitempty,datetime=2006-01-02"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Current(ctx context.Context, in Query) (cycle.Result, error)
}
