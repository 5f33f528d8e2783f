package ode

import "errors"

// Configuration errors shared by the solver and the config layer.
var (
	// ErrStepCount indicates a step count below 1, which would make the
	// step size undefined.
	ErrStepCount = errors.New("ode: step count must be at least 1")

	// ErrDomain indicates a time domain whose end does not exceed its start.
	ErrDomain = errors.New("ode: domain end must exceed domain start")
)
