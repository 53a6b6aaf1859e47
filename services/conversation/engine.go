// File: services/conversation/engine.go
package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"atelier/models"
	"atelier/services/assistant"
	"atelier/services/scheduling"
)

const greeting = "Hello! I'm here to help you schedule a photography session with Shriya. What type of photography service are you interested in?"

// Init creates a new session seeded with the assistant greeting.
func (s *DefaultConversationService) Init(ctx context.Context) (*models.ConversationSession, error) {
	now := time.Now().UnixMilli()
	session := &models.ConversationSession{
		ID:    uuid.New().String(),
		State: models.StateInitiated,
		Messages: []models.ChatMessage{
			{
				ID:        uuid.New().String(),
				Role:      models.RoleAssistant,
				Content:   greeting,
				Timestamp: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Memory.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save new session: %w", err)
	}
	return session, nil
}

// Message applies one user turn: record the message, fold any recognized
// booking fields into the draft, advance the state, and reply. When the
// turn lands on an availability check with a known date, the slot list is
// appended as a second assistant message.
func (s *DefaultConversationService) Message(ctx context.Context, sessionID, content string) (*MessageResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.Memory.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	session.Messages = append(session.Messages, newMessage(models.RoleUser, content))

	if session.Booking == nil {
		session.Booking = &models.BookingDraft{}
	}
	session.Booking.Merge(assistant.ExtractBookingFields(content, session.Booking))
	advanceState(session)

	reply, err := s.Responder.Chat(ctx, session.Messages, session.State, session.Booking)
	if err != nil {
		// Session is left unpersisted so the turn can be retried.
		return nil, fmt.Errorf("assistant reply: %w", err)
	}

	assistantMessage := newMessage(models.RoleAssistant, reply.Text)
	session.Messages = append(session.Messages, assistantMessage)
	session.Booking.Merge(reply.Extracted)

	if reply.Action == models.ActionCheckAvailability && session.Booking.PreferredDate != "" {
		availability, err := s.Calendar.GetAvailability(ctx, session.Booking.PreferredDate, session.Booking.ServiceType)
		if err != nil {
			return nil, fmt.Errorf("availability for %s: %w", session.Booking.PreferredDate, err)
		}
		session.Messages = append(session.Messages,
			newMessage(models.RoleAssistant, FormatAvailability(availability)))
	}

	session.UpdatedAt = time.Now().UnixMilli()
	if err := s.Memory.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	return &MessageResult{
		Message: assistantMessage,
		State:   session.State,
		Booking: *session.Booking,
	}, nil
}

// Status returns the full session, or nil when it does not exist.
func (s *DefaultConversationService) Status(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	return s.Memory.Get(ctx, sessionID)
}

// Confirm commits the drafted booking. The requested slot is re-checked
// against current bookings; on conflict the session and draft are left
// untouched so the client can pick another time.
func (s *DefaultConversationService) Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.Memory.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if session == nil || session.Booking == nil || !session.Booking.Complete() || session.State.Terminal() {
		return nil, ErrNoBookingToConfirm
	}
	draft := session.Booking

	wantMin, err := scheduling.ParseClock(draft.PreferredTime)
	if err != nil {
		return nil, ErrSlotConflict
	}
	availability, err := s.Calendar.GetAvailability(ctx, draft.PreferredDate, draft.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("availability for %s: %w", draft.PreferredDate, err)
	}
	requested := findSlot(availability.Slots, wantMin)
	if requested == nil || !requested.Available {
		return nil, ErrSlotConflict
	}

	event, err := s.Calendar.CreateBooking(ctx, models.BookingRequest{
		Name:          draft.Name,
		Email:         draft.Email,
		Phone:         draft.Phone,
		ServiceType:   draft.ServiceType,
		PreferredDate: draft.PreferredDate,
		PreferredTime: draft.PreferredTime,
		Notes:         draft.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	confirmation := newMessage(models.RoleAssistant,
		fmt.Sprintf("Your booking has been confirmed! You'll receive a confirmation email at %s. Looking forward to working with you!", draft.Email))
	session.State = models.StateCompleted
	session.Messages = append(session.Messages, confirmation)
	session.UpdatedAt = time.Now().UnixMilli()
	if err := s.Memory.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	return &ConfirmResult{Event: event, Message: confirmation}, nil
}

// Cancel ends the conversation regardless of its current state.
func (s *DefaultConversationService) Cancel(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.Memory.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	session.State = models.StateCancelled
	session.UpdatedAt = time.Now().UnixMilli()
	if err := s.Memory.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return session, nil
}

// advanceState moves the session forward at most one stage per turn,
// based on what the draft now holds. States never regress.
func advanceState(session *models.ConversationSession) {
	draft := session.Booking
	switch session.State {
	case models.StateInitiated:
		if draft.ServiceType != "" {
			session.State = models.StateCollectingInfo
		}
	case models.StateCollectingInfo:
		if draft.Name != "" && draft.Email != "" {
			session.State = models.StateCheckingAvailability
		}
	case models.StateCheckingAvailability:
		if draft.PreferredDate != "" && draft.PreferredTime != "" {
			session.State = models.StateConfirming
		}
	}
}

func findSlot(slots []models.TimeSlot, startMin int) *models.TimeSlot {
	for i := range slots {
		if scheduling.MinutesOfDay(slots[i].Start) == startMin {
			return &slots[i]
		}
	}
	return nil
}

func newMessage(role, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}
