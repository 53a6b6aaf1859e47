package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atelier/config"
	bookingRepo "atelier/database/repository/booking"
	"atelier/models"
	"atelier/utils"

	"go.uber.org/zap"
)

// NewDefaultCalendarService builds a calendar service from configuration.
func NewDefaultCalendarService(repo bookingRepo.BookingRepository) *DefaultCalendarService {
	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		utils.GetLogger().Warn("invalid timezone, falling back to UTC",
			zap.String("timezone", config.AppConfig.Timezone), zap.Error(err))
		loc = time.UTC
	}
	return &DefaultCalendarService{
		Repo:      repo,
		OpenHour:  config.AppConfig.BusinessOpenHour,
		CloseHour: config.AppConfig.BusinessCloseHour,
		Location:  loc,
	}
}

// GetAvailability enumerates hourly slots across business hours for the
// given date. Each slot spans the service's duration; a slot is marked
// unavailable when it overlaps any existing booking on that date. Two
// intervals [a,b) and [c,d) overlap iff a < d and c < b.
func (s *DefaultCalendarService) GetAvailability(ctx context.Context, date string, serviceType models.ServiceType) (*models.Availability, error) {
	day, err := ParseDate(date, s.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	canonical := day.Format("2006-01-02")

	booked, err := s.Repo.GetByDate(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("fetch bookings for %s: %w", canonical, err)
	}

	duration := models.ServiceDuration(serviceType)

	var slots []models.TimeSlot
	for hour := s.OpenHour; hour < s.CloseHour; hour++ {
		startMin := hour * 60
		endMin := startMin + duration

		conflict := false
		for _, b := range booked {
			if startMin < b.End && b.Start < endMin {
				conflict = true
				break
			}
		}

		slotStart := day.Add(time.Duration(startMin) * time.Minute)
		slots = append(slots, models.TimeSlot{
			Start:     slotStart,
			End:       slotStart.Add(time.Duration(duration) * time.Minute),
			Available: !conflict,
		})
	}

	return &models.Availability{Date: canonical, Slots: slots}, nil
}

// CreateBooking persists the booking and returns the created calendar
// event. Callers are expected to have checked availability first; no
// conflict check is repeated here.
func (s *DefaultCalendarService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error) {
	day, err := ParseDate(req.PreferredDate, s.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.PreferredDate, err)
	}
	startMin, err := ParseClock(req.PreferredTime)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", req.PreferredTime, err)
	}
	duration := models.ServiceDuration(req.ServiceType)

	booking := models.Booking{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		Date:        day.Format("2006-01-02"),
		Start:       startMin,
		End:         startMin + duration,
		Notes:       req.Notes,
	}
	id, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	start := day.Add(time.Duration(startMin) * time.Minute)
	event := &models.CalendarEvent{
		ID:            id,
		Summary:       fmt.Sprintf("%s Photography - %s", titleCase(string(req.ServiceType)), req.Name),
		Description:   formatEventDescription(req),
		Start:         start,
		End:           start.Add(time.Duration(duration) * time.Minute),
		AttendeeEmail: req.Email,
		AttendeeName:  req.Name,
	}
	return event, nil
}

func formatEventDescription(req models.BookingRequest) string {
	var sb strings.Builder
	sb.WriteString("Client Information:\n")
	sb.WriteString("Name: " + req.Name + "\n")
	sb.WriteString("Email: " + req.Email + "\n")
	if req.Phone != "" {
		sb.WriteString("Phone: " + req.Phone + "\n")
	}
	sb.WriteString("\nService: " + string(req.ServiceType) + "\n")
	if req.Notes != "" {
		sb.WriteString("\nNotes:\n" + req.Notes)
	}
	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
