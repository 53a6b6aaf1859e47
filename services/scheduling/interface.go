package scheduling

import (
	"context"
	"time"

	bookingRepo "atelier/database/repository/booking"
	"atelier/models"
)

// CalendarService is the studio calendar: it answers slot availability
// queries and commits finalized bookings.
type CalendarService interface {
	GetAvailability(ctx context.Context, date string, serviceType models.ServiceType) (*models.Availability, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error)
}

// DefaultCalendarService implements CalendarService over the booking
// repository with a fixed business-hours window.
type DefaultCalendarService struct {
	Repo      bookingRepo.BookingRepository
	OpenHour  int
	CloseHour int
	Location  *time.Location
}
