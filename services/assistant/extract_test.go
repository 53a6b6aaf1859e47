package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atelier/models"
)

func TestExtractServiceType(t *testing.T) {
	got := ExtractBookingFields("I'd like to book a wedding shoot", nil)
	assert.Equal(t, models.ServiceWedding, got.ServiceType)

	got = ExtractBookingFields("Do you do PORTRAIT sessions?", nil)
	assert.Equal(t, models.ServicePortrait, got.ServiceType)

	got = ExtractBookingFields("hello there", nil)
	assert.Empty(t, got.ServiceType)
}

func TestExtractContactDetails(t *testing.T) {
	got := ExtractBookingFields("Reach me at jane.doe+photos@example.co.uk or 555-123-4567", nil)
	assert.Equal(t, "jane.doe+photos@example.co.uk", got.Email)
	assert.Equal(t, "555-123-4567", got.Phone)

	got = ExtractBookingFields("my number is 5551234567", nil)
	assert.Equal(t, "5551234567", got.Phone)
}

func TestExtractDateFormats(t *testing.T) {
	got := ExtractBookingFields("how about 2026-09-15?", nil)
	assert.Equal(t, "2026-09-15", got.PreferredDate)

	got = ExtractBookingFields("maybe 9/15/2026 works", nil)
	assert.Equal(t, "9/15/2026", got.PreferredDate)

	// ISO form wins when both appear.
	got = ExtractBookingFields("2026-09-15 or 9/16/2026", nil)
	assert.Equal(t, "2026-09-15", got.PreferredDate)
}

func TestExtractTime(t *testing.T) {
	got := ExtractBookingFields("10:00 am would be great", nil)
	assert.Equal(t, "10:00 am", got.PreferredTime)

	got = ExtractBookingFields("let's say 14:30", nil)
	assert.Equal(t, "14:30", got.PreferredTime)
}

func TestExtractNameHeuristic(t *testing.T) {
	got := ExtractBookingFields("Jane Doe", nil)
	assert.Equal(t, "Jane Doe", got.Name)

	// A recognized email is stripped before the name check, so a combined
	// introduction yields both fields.
	got = ExtractBookingFields("Jane Doe, jane@example.com", nil)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)

	// Too long to be a name.
	got = ExtractBookingFields("I would really love to book something", nil)
	assert.Empty(t, got.Name)

	// Digits disqualify the candidate.
	got = ExtractBookingFields("Apartment 4B Smith", nil)
	assert.Empty(t, got.Name)

	// An already-known name is never overwritten by the heuristic.
	got = ExtractBookingFields("John Smith", &models.BookingDraft{Name: "Jane Doe"})
	assert.Empty(t, got.Name)
}

func TestDetermineAction(t *testing.T) {
	draft := &models.BookingDraft{PreferredDate: "2026-09-15"}

	assert.Equal(t, models.ActionCheckAvailability,
		DetermineAction("anything", models.StateCheckingAvailability, draft))

	assert.Equal(t, models.ActionSchedule,
		DetermineAction("anything", models.StateConfirming, nil))

	assert.Equal(t, models.ActionCheckAvailability,
		DetermineAction("Let me check what time slots are open.", models.StateCollectingInfo, nil))

	assert.Equal(t, models.ActionNone,
		DetermineAction("What's your name?", models.StateCollectingInfo, nil))

	// No date known yet, so the state alone does not trigger a lookup.
	assert.Equal(t, models.ActionNone,
		DetermineAction("What date works?", models.StateCheckingAvailability, &models.BookingDraft{}))
}

func TestClassifyInquiry(t *testing.T) {
	intent, topic := classifyInquiry("I want to book a session")
	assert.Equal(t, models.IntentBooking, intent)
	assert.Equal(t, "booking", topic)

	intent, topic = classifyInquiry("How much does a shoot cost?")
	assert.Equal(t, models.IntentQuestion, intent)
	assert.Equal(t, "pricing", topic)

	intent, topic = classifyInquiry("Can I see your portfolio?")
	assert.Equal(t, models.IntentQuestion, intent)
	assert.Equal(t, "portfolio", topic)

	intent, topic = classifyInquiry("Love your work!")
	assert.Equal(t, models.IntentGeneral, intent)
	assert.Empty(t, topic)
}
