// File: services/conversation/interface.go
package conversation

import (
	"context"
	"sync"

	"atelier/models"
	"atelier/services/assistant"
	"atelier/services/memory"
	"atelier/services/scheduling"
)

// MessageResult is the outcome of one user turn: the assistant's reply,
// the session state after the turn, and the draft so far.
type MessageResult struct {
	Message models.ChatMessage  `json:"message"`
	State   models.SessionState `json:"state"`
	Booking models.BookingDraft `json:"booking"`
}

// ConfirmResult reports a committed booking.
type ConfirmResult struct {
	Event   *models.CalendarEvent `json:"event"`
	Message models.ChatMessage    `json:"message"`
}

// ConversationService drives booking dialogues from greeting to a
// committed calendar event.
type ConversationService interface {
	Init(ctx context.Context) (*models.ConversationSession, error)
	Message(ctx context.Context, sessionID, content string) (*MessageResult, error)
	Status(ctx context.Context, sessionID string) (*models.ConversationSession, error)
	Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error)
	Cancel(ctx context.Context, sessionID string) (*models.ConversationSession, error)
}

// DefaultConversationService serializes work per session with a keyed
// mutex so concurrent messages to one session apply in order.
type DefaultConversationService struct {
	Memory    memory.Store
	Responder assistant.Responder
	Calendar  scheduling.CalendarService

	locks sync.Map // sessionID -> *sync.Mutex
}

func NewDefaultConversationService(store memory.Store, responder assistant.Responder, calendar scheduling.CalendarService) *DefaultConversationService {
	return &DefaultConversationService{
		Memory:    store,
		Responder: responder,
		Calendar:  calendar,
	}
}

func (s *DefaultConversationService) lock(sessionID string) func() {
	v, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
