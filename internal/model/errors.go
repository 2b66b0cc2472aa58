package model

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("not authorized")

	// ErrForecastUnavailable is returned when a habit projection is
	// undefined (non-positive velocity).
	ErrForecastUnavailable = errors.New("forecast unavailable")
)
