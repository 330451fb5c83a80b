package domain

import "errors"

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrCameraNotFound     = errors.New("camera not found")
	ErrUnknownAccessory   = errors.New("unknown accessory")
	ErrDateBeforeMinimum  = errors.New("date is before the allowed minimum")
	ErrIncompleteForm     = errors.New("booking form is incomplete")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidPayload     = errors.New("invalid booking payload")
	ErrInvalidDate        = errors.New("invalid date")
)
