package conversation

import (
	"strings"

	"atelier/models"
)

// FormatAvailability renders the open slots for a date as chat text.
func FormatAvailability(availability *models.Availability) string {
	var open []models.TimeSlot
	for _, slot := range availability.Slots {
		if slot.Available {
			open = append(open, slot)
		}
	}
	if len(open) == 0 {
		return "Unfortunately, there are no available slots for that date. Would you like to try a different date?"
	}

	var sb strings.Builder
	sb.WriteString("Here are the available time slots for " + availability.Date + ":\n\n")
	for _, slot := range open {
		sb.WriteString("- " + slot.Start.Format("3:04 PM") + "\n")
	}
	sb.WriteString("\nWhich time works best for you?")
	return sb.String()
}
