// Package service resolves cycle queries against the clock
package service

import (
	"context"
	"time"

	"lunacycle/internal/core/cycle"
	perr "lunacycle/internal/platform/errors"
	"lunacycle/internal/platform/logger"
	"lunacycle/internal/platform/net/http/bind"
	ptime "lunacycle/internal/platform/time"
	"lunacycle/internal/services/api/cycle/domain"
)

// Service defines the cycle service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the cycle service
type Svc struct {
	now      func() time.Time
	loc      *time.Location
	lookback int
}

// New constructs a cycle service. now and loc decide what "today" is
func New(now func() time.Time, loc *time.Location) *Svc {
	if now == nil {
		panic("cycle.Service requires a non nil clock")
	}
	return &Svc{now: now, loc: loc, lookback: domain.DefaultLookback}
}

// Today is the current calendar date in the service zone
func (s *Svc) Today() time.Time { return ptime.Today(s.now(), s.loc) }

// Current validates in and computes the cycle state as of today
func (s *Svc) Current(ctx context.Context, in domain.Query) (cycle.Result, error) {
	if err := bind.Validate(in); err != nil {
		return cycle.Result{}, err
	}
	today := s.Today()

	ref := ptime.AddDays(today, -s.lookback)
	if in.Last != "" {
		parsed, err := ptime.ParseDate(in.Last)
		if err != nil {
			return cycle.Result{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeValidation, "last must be a valid date (%s)", ptime.DateLayout), "last")
		}
		ref = parsed
	}

	res := cycle.Compute(ref, today)
	logger.C(ctx).Debug().
		Str("last", ptime.FormatDate(res.Reference)).
		Int("day", res.Day).
		Str("phase", res.Phase.Key()).
		Msg("cycle computed")
	return res, nil
}
