package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/models"
	"atelier/services/assistant"
	"atelier/services/scheduling"
)

// fakeStore keeps sessions in a map, like the redis store but in-process.
type fakeStore struct {
	sessions map[string]models.ConversationSession
	saves    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]models.ConversationSession)}
}

func (f *fakeStore) Save(ctx context.Context, session *models.ConversationSession) error {
	copied := *session
	copied.Messages = append([]models.ChatMessage(nil), session.Messages...)
	if session.Booking != nil {
		draft := *session.Booking
		copied.Booking = &draft
	}
	f.sessions[session.ID] = copied
	f.saves++
	return nil
}

func (f *fakeStore) Get(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	stored, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := stored
	copied.Messages = append([]models.ChatMessage(nil), stored.Messages...)
	if stored.Booking != nil {
		draft := *stored.Booking
		copied.Booking = &draft
	}
	return &copied, nil
}

// scriptedResponder answers with canned text and derives the action the
// same way the production responder does.
type scriptedResponder struct {
	text string
}

func (r *scriptedResponder) Chat(ctx context.Context, messages []models.ChatMessage, state models.SessionState, draft *models.BookingDraft) (*models.AssistantReply, error) {
	text := r.text
	if text == "" {
		text = "Got it!"
	}
	return &models.AssistantReply{
		Text:   text,
		Action: assistant.DetermineAction(text, state, draft),
	}, nil
}

// fakeCalendar serves a fixed slot grid and records created bookings.
type fakeCalendar struct {
	bookedStarts map[int]bool // minutes from midnight
	created      []models.BookingRequest
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{bookedStarts: make(map[int]bool)}
}

func (c *fakeCalendar) GetAvailability(ctx context.Context, date string, serviceType models.ServiceType) (*models.Availability, error) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	duration := time.Duration(models.ServiceDuration(serviceType)) * time.Minute
	var slots []models.TimeSlot
	for hour := 9; hour < 18; hour++ {
		start := day.Add(time.Duration(hour) * time.Hour)
		slots = append(slots, models.TimeSlot{
			Start:     start,
			End:       start.Add(duration),
			Available: !c.bookedStarts[hour*60],
		})
	}
	return &models.Availability{Date: "2026-09-15", Slots: slots}, nil
}

func (c *fakeCalendar) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error) {
	c.created = append(c.created, req)
	startMin, err := scheduling.ParseClock(req.PreferredTime)
	if err != nil {
		return nil, err
	}
	c.bookedStarts[startMin] = true
	return &models.CalendarEvent{
		ID:            "evt-1",
		Summary:       "Booking for " + req.Name,
		AttendeeEmail: req.Email,
	}, nil
}

// failingCalendar simulates the calendar backend being unreachable.
type failingCalendar struct{}

func (c *failingCalendar) GetAvailability(ctx context.Context, date string, serviceType models.ServiceType) (*models.Availability, error) {
	return nil, errors.New("calendar backend unreachable")
}

func (c *failingCalendar) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error) {
	return nil, errors.New("calendar backend unreachable")
}

func newTestService() (*DefaultConversationService, *fakeStore, *fakeCalendar) {
	store := newFakeStore()
	calendar := newFakeCalendar()
	svc := NewDefaultConversationService(store, &scriptedResponder{}, calendar)
	return svc, store, calendar
}

func TestInitSeedsGreeting(t *testing.T) {
	svc, store, _ := newTestService()

	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.StateInitiated, session.State)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, models.RoleAssistant, session.Messages[0].Role)
	assert.Contains(t, session.Messages[0].Content, "photography session")
	assert.Equal(t, 1, store.saves)
}

func TestMessageUnknownSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Message(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMessageAppendsUserAndAssistant(t *testing.T) {
	svc, store, _ := newTestService()
	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), session.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, result.Message.Role)

	stored, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 3) // greeting, user, assistant
	assert.Equal(t, models.RoleUser, stored.Messages[1].Role)
	assert.Equal(t, "hello", stored.Messages[1].Content)
}

func TestStateAdvancesWithinSameTurn(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), session.ID, "I need wedding photos")
	require.NoError(t, err)
	assert.Equal(t, models.StateCollectingInfo, result.State)
	assert.Equal(t, models.ServiceWedding, result.Booking.ServiceType)
}

func TestStateAdvancesOneStagePerTurn(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	// Everything at once still only moves initiated -> collecting_info.
	result, err := svc.Message(context.Background(), session.ID,
		"wedding for Jane Doe, jane@example.com on 2026-09-15 at 10:00 am")
	require.NoError(t, err)
	assert.Equal(t, models.StateCollectingInfo, result.State)

	// The next turn sees the complete draft and moves on once more.
	result, err = svc.Message(context.Background(), session.ID, "that's everything")
	require.NoError(t, err)
	assert.Equal(t, models.StateCheckingAvailability, result.State)
}

func TestDraftFieldsAccumulateAcrossTurns(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), session.ID, "I'd like a portrait session")
	require.NoError(t, err)
	assert.Equal(t, models.ServicePortrait, result.Booking.ServiceType)
	assert.Equal(t, models.StateCollectingInfo, result.State)

	result, err = svc.Message(context.Background(), session.ID, "Jane Doe, jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ServicePortrait, result.Booking.ServiceType)
	assert.Equal(t, "Jane Doe", result.Booking.Name)
	assert.Equal(t, "jane@example.com", result.Booking.Email)
	assert.Equal(t, models.StateCheckingAvailability, result.State)
}

func TestAvailabilityMessageAppendedWhenDateKnown(t *testing.T) {
	svc, store, _ := newTestService()
	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	_, err = svc.Message(context.Background(), session.ID, "I'd like a portrait session")
	require.NoError(t, err)
	_, err = svc.Message(context.Background(), session.ID, "Jane Doe, jane@example.com")
	require.NoError(t, err)

	// State is checking_availability and the message carries a date but
	// no time yet, so the turn ends with an extra assistant message
	// listing slots.
	result, err := svc.Message(context.Background(), session.ID, "how about 2026-09-15?")
	require.NoError(t, err)
	assert.Equal(t, models.StateCheckingAvailability, result.State)

	stored, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	last := stored.Messages[len(stored.Messages)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.Contains(t, last.Content, "available time slots for 2026-09-15")
	assert.Contains(t, last.Content, "- 10:00 AM")
	assert.Contains(t, last.Content, "Which time works best for you?")
}

func TestMessageCalendarFailureLeavesSessionUnsaved(t *testing.T) {
	store := newFakeStore()
	svc := NewDefaultConversationService(store, &scriptedResponder{}, &failingCalendar{})

	session, err := svc.Init(context.Background())
	require.NoError(t, err)
	_, err = svc.Message(context.Background(), session.ID, "I'd like a portrait session")
	require.NoError(t, err)
	_, err = svc.Message(context.Background(), session.ID, "Jane Doe, jane@example.com")
	require.NoError(t, err)

	savesBefore := store.saves
	before, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)

	// The date triggers an availability lookup; the calendar is down, so
	// the turn fails and nothing about the session changes.
	_, err = svc.Message(context.Background(), session.ID, "how about 2026-09-15?")
	require.Error(t, err)

	assert.Equal(t, savesBefore, store.saves)
	after, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, after.Messages, len(before.Messages))
	assert.Equal(t, before.State, after.State)
	assert.Equal(t, before.Booking, after.Booking)
}

func TestConfirmHappyPath(t *testing.T) {
	svc, store, calendar := newTestService()
	session := bookReadySession(t, svc)

	result, err := svc.Confirm(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, "evt-1", result.Event.ID)
	assert.Equal(t, "jane@example.com", result.Event.AttendeeEmail)
	assert.Contains(t, result.Message.Content, "jane@example.com")

	require.Len(t, calendar.created, 1)
	assert.Equal(t, models.ServiceWedding, calendar.created[0].ServiceType)

	stored, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, stored.State)
	assert.Equal(t, models.RoleAssistant, stored.Messages[len(stored.Messages)-1].Role)
}

func TestConfirmWithoutSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoBookingToConfirm)
}

func TestConfirmWithIncompleteDraft(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	_, err = svc.Message(context.Background(), session.ID, "I'd like a portrait session")
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrNoBookingToConfirm)
}

func TestConfirmSlotConflictLeavesSessionIntact(t *testing.T) {
	svc, store, calendar := newTestService()
	session := bookReadySession(t, svc)
	calendar.bookedStarts[10*60] = true // someone else took 10:00

	before, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrSlotConflict)

	after, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateConfirming, after.State)
	assert.Equal(t, before.Booking, after.Booking)
	assert.Len(t, after.Messages, len(before.Messages))
	assert.Empty(t, calendar.created)
}

func TestConfirmTwiceRejected(t *testing.T) {
	svc, _, _ := newTestService()
	session := bookReadySession(t, svc)

	_, err := svc.Confirm(context.Background(), session.ID)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrNoBookingToConfirm)
}

func TestCancelFromAnyState(t *testing.T) {
	svc, store, _ := newTestService()
	session, err := svc.Init(context.Background())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateCancelled, cancelled.State)

	stored, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateCancelled, stored.State)
}

func TestCancelUnknownSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStatusReturnsNilForUnknownSession(t *testing.T) {
	svc, _, _ := newTestService()

	session, err := svc.Status(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestFormatAvailabilityNoSlots(t *testing.T) {
	text := FormatAvailability(&models.Availability{Date: "2026-09-15"})
	assert.Contains(t, text, "no available slots")
	assert.Contains(t, text, "different date")
}

func TestFormatAvailabilityListsOnlyOpenSlots(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	text := FormatAvailability(&models.Availability{
		Date: "2026-09-15",
		Slots: []models.TimeSlot{
			{Start: day.Add(9 * time.Hour), Available: true},
			{Start: day.Add(10 * time.Hour), Available: false},
			{Start: day.Add(14 * time.Hour), Available: true},
		},
	})
	assert.Contains(t, text, "- 9:00 AM")
	assert.NotContains(t, text, "- 10:00 AM")
	assert.Contains(t, text, "- 2:00 PM")
}

// bookReadySession walks a session to the confirming state with a
// complete wedding draft for 2026-09-15 at 10:00 am.
func bookReadySession(t *testing.T, svc *DefaultConversationService) *models.ConversationSession {
	t.Helper()
	ctx := context.Background()

	session, err := svc.Init(ctx)
	require.NoError(t, err)

	_, err = svc.Message(ctx, session.ID, "I need wedding photos")
	require.NoError(t, err)
	_, err = svc.Message(ctx, session.ID, "Jane Doe, jane@example.com")
	require.NoError(t, err)
	result, err := svc.Message(ctx, session.ID, "2026-09-15 at 10:00 am please")
	require.NoError(t, err)
	require.Equal(t, models.StateConfirming, result.State)
	require.True(t, result.Booking.Complete())

	return session
}
