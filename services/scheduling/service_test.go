package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/models"
)

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, booking)
	return booking.ID, nil
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestCalendar(repo *fakeBookingRepo) *DefaultCalendarService {
	return &DefaultCalendarService{
		Repo:      repo,
		OpenHour:  9,
		CloseHour: 18,
		Location:  time.UTC,
	}
}

func TestGetAvailabilityEmptyDay(t *testing.T) {
	svc := newTestCalendar(&fakeBookingRepo{})

	availability, err := svc.GetAvailability(context.Background(), "2026-09-15", models.ServicePortrait)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-15", availability.Date)
	require.Len(t, availability.Slots, 9) // one per hour, 9:00 through 17:00
	for _, slot := range availability.Slots {
		assert.True(t, slot.Available)
	}
	assert.Equal(t, 9*60, MinutesOfDay(availability.Slots[0].Start))
	assert.Equal(t, 17*60, MinutesOfDay(availability.Slots[8].Start))
}

func TestGetAvailabilitySlotSpanMatchesService(t *testing.T) {
	svc := newTestCalendar(&fakeBookingRepo{})

	availability, err := svc.GetAvailability(context.Background(), "2026-09-15", models.ServiceWedding)
	require.NoError(t, err)

	first := availability.Slots[0]
	assert.Equal(t, 8*time.Hour, first.End.Sub(first.Start))
}

func TestGetAvailabilityPartialOverlapBlocksSlot(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", Date: "2026-09-15", Start: 9*60 + 30, End: 10*60 + 30},
	}}
	svc := newTestCalendar(repo)

	availability, err := svc.GetAvailability(context.Background(), "2026-09-15", models.ServicePortrait)
	require.NoError(t, err)

	// 9:00-10:00 and 10:00-11:00 both overlap 9:30-10:30; 11:00 is clear.
	assert.False(t, availability.Slots[0].Available)
	assert.False(t, availability.Slots[1].Available)
	assert.True(t, availability.Slots[2].Available)
}

func TestGetAvailabilityTouchingIntervalsDoNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", Date: "2026-09-15", Start: 9 * 60, End: 10 * 60},
	}}
	svc := newTestCalendar(repo)

	availability, err := svc.GetAvailability(context.Background(), "2026-09-15", models.ServicePortrait)
	require.NoError(t, err)

	// [10:00,11:00) shares only the boundary instant with [9:00,10:00).
	assert.False(t, availability.Slots[0].Available)
	assert.True(t, availability.Slots[1].Available)
}

func TestGetAvailabilityAcceptsUSDateFormat(t *testing.T) {
	svc := newTestCalendar(&fakeBookingRepo{})

	availability, err := svc.GetAvailability(context.Background(), "9/15/2026", models.ServicePortrait)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", availability.Date)
}

func TestGetAvailabilityRejectsBadDate(t *testing.T) {
	svc := newTestCalendar(&fakeBookingRepo{})

	_, err := svc.GetAvailability(context.Background(), "next tuesday", models.ServicePortrait)
	assert.Error(t, err)
}

func TestCreateBookingPersistsAndBlocksSlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestCalendar(repo)

	event, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		ServiceType:   models.ServiceWedding,
		PreferredDate: "2026-09-15",
		PreferredTime: "10:00 am",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Wedding Photography - Jane Doe", event.Summary)
	assert.Equal(t, "jane@example.com", event.AttendeeEmail)
	assert.Equal(t, 8*time.Hour, event.End.Sub(event.Start))

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, 10*60, repo.bookings[0].Start)
	assert.Equal(t, 18*60, repo.bookings[0].End)

	availability, err := svc.GetAvailability(context.Background(), "2026-09-15", models.ServicePortrait)
	require.NoError(t, err)
	// The wedding runs 10:00-18:00, so only the 9:00 portrait slot is left.
	assert.True(t, availability.Slots[0].Available)
	for _, slot := range availability.Slots[1:] {
		assert.False(t, slot.Available)
	}
}

func TestParseClockFormats(t *testing.T) {
	cases := map[string]int{
		"10:00 am": 10 * 60,
		"2:00 pm":  14 * 60,
		"2:00pm":   14 * 60,
		"14:30":    14*60 + 30,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseClock("noonish")
	assert.Error(t, err)
}
