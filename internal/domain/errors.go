package domain

import "errors"

var (
	// ErrInvalidOfficeHours is returned for partial, malformed or inverted office-hour windows.
	ErrInvalidOfficeHours = errors.New("invalid office hours")

	// ErrAppointmentFinalized is returned for any transition out of a terminal state.
	ErrAppointmentFinalized = errors.New("appointment already finalized")
)
