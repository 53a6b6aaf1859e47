package models

import "time"

// ServiceType identifies a photography service offered by the studio.
type ServiceType string

const (
	ServicePortrait     ServiceType = "portrait"
	ServiceEvent        ServiceType = "event"
	ServiceWedding      ServiceType = "wedding"
	ServiceCommercial   ServiceType = "commercial"
	ServicePhotojournal ServiceType = "photojournalism"
	ServiceLandscape    ServiceType = "landscape"
	ServiceTheatre      ServiceType = "theatre"
	ServiceStorytelling ServiceType = "storytelling"
)

// AllServiceTypes lists every bookable service, in catalogue order.
var AllServiceTypes = []ServiceType{
	ServicePortrait,
	ServiceEvent,
	ServiceWedding,
	ServiceCommercial,
	ServicePhotojournal,
	ServiceLandscape,
	ServiceTheatre,
	ServiceStorytelling,
}

// serviceDurations maps each service to its session length in minutes.
var serviceDurations = map[ServiceType]int{
	ServicePortrait:     60,
	ServiceEvent:        240,
	ServiceWedding:      480,
	ServiceCommercial:   120,
	ServicePhotojournal: 180,
	ServiceLandscape:    120,
	ServiceTheatre:      180,
	ServiceStorytelling: 90,
}

// ServiceDuration returns the session length for a service in minutes,
// defaulting to 60 when the service is unknown or unset.
func ServiceDuration(st ServiceType) int {
	if d, ok := serviceDurations[st]; ok {
		return d
	}
	return 60
}

// BookingDraft is the partially-filled booking record accumulated over a
// conversation. Fields, once set, are only ever overwritten, never unset.
type BookingDraft struct {
	Name          string      `json:"name,omitempty"`
	Email         string      `json:"email,omitempty"`
	Phone         string      `json:"phone,omitempty"`
	ServiceType   ServiceType `json:"serviceType,omitempty"`
	PreferredDate string      `json:"preferredDate,omitempty"`
	PreferredTime string      `json:"preferredTime,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

// Merge applies newly extracted fields on top of the draft. Last writer
// wins per field; empty incoming fields leave the draft untouched.
func (d *BookingDraft) Merge(in BookingDraft) {
	if in.Name != "" {
		d.Name = in.Name
	}
	if in.Email != "" {
		d.Email = in.Email
	}
	if in.Phone != "" {
		d.Phone = in.Phone
	}
	if in.ServiceType != "" {
		d.ServiceType = in.ServiceType
	}
	if in.PreferredDate != "" {
		d.PreferredDate = in.PreferredDate
	}
	if in.PreferredTime != "" {
		d.PreferredTime = in.PreferredTime
	}
	if in.Notes != "" {
		d.Notes = in.Notes
	}
}

// Empty reports whether no field has been recognized yet.
func (d BookingDraft) Empty() bool {
	return d == BookingDraft{}
}

// Complete reports whether the draft is eligible for confirmation.
func (d BookingDraft) Complete() bool {
	return d.Name != "" && d.Email != "" && d.ServiceType != "" &&
		d.PreferredDate != "" && d.PreferredTime != ""
}

// BookingRequest is a fully-specified booking, either completed from a
// conversation draft or submitted directly via /api/schedule.
type BookingRequest struct {
	Name          string      `json:"name" binding:"required"`
	Email         string      `json:"email" binding:"required"`
	Phone         string      `json:"phone,omitempty"`
	ServiceType   ServiceType `json:"serviceType" binding:"required"`
	PreferredDate string      `json:"preferredDate" binding:"required"`
	PreferredTime string      `json:"preferredTime" binding:"required"`
	Notes         string      `json:"notes,omitempty"`
}

// Booking is a confirmed booking record as persisted.
type Booking struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone,omitempty" json:"phone,omitempty"`
	ServiceType ServiceType `bson:"serviceType" json:"serviceType"`
	Date        string      `bson:"date" json:"date"`   // "2006-01-02"
	Start       int         `bson:"start" json:"start"` // minutes from midnight
	End         int         `bson:"end" json:"end"`     // minutes from midnight
	Notes       string      `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
}

// CalendarEvent is the record reported back once a booking is committed.
type CalendarEvent struct {
	ID            string    `json:"id"`
	Summary       string    `json:"summary"`
	Description   string    `json:"description,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	AttendeeEmail string    `json:"attendeeEmail"`
	AttendeeName  string    `json:"attendeeName,omitempty"`
}

// ServiceInfo describes a catalogue entry for the services endpoint.
type ServiceInfo struct {
	ID          ServiceType `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Duration    int         `json:"duration"`
	Highlights  []string    `json:"highlights"`
}
