package bookingRepo

import (
	"context"

	"atelier/models"
)

// BookingRepository persists confirmed bookings and serves the day reads
// the availability engine needs for its overlap checks.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
}
