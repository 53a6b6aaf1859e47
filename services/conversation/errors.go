package conversation

import "errors"

// Sentinel errors surfaced to handlers for status-code mapping.
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoBookingToConfirm = errors.New("no booking to confirm")
	ErrSlotConflict       = errors.New("time slot already booked")
)
