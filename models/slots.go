package models

import "time"

// TimeSlot is one bookable interval on a given day. Slots are generated
// transiently on every availability query and never persisted.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// Availability is the full slot grid for one date, available and booked
// slots included so callers can render both.
type Availability struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}
