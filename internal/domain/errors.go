package domain

import "errors"

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidAction    = errors.New("invalid action")
	ErrInvalidTime      = errors.New("invalid time")
)
