package models

// SessionState labels where a booking conversation is in its lifecycle.
// Transitions are strictly forward; cancel is reachable from any
// non-terminal state.
type SessionState string

const (
	StateInitiated            SessionState = "initiated"
	StateCollectingInfo       SessionState = "collecting_info"
	StateCheckingAvailability SessionState = "checking_availability"
	StateConfirming           SessionState = "confirming"
	StateCompleted            SessionState = "completed"
	StateCancelled            SessionState = "cancelled"
)

// Terminal reports whether no further transitions are possible.
func (s SessionState) Terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is a single immutable conversation entry.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // unix millis, ordering only
}

// ConversationSession holds one booking dialogue: its state, the draft
// accumulated so far, and the full message history.
type ConversationSession struct {
	ID        string        `json:"id"`
	State     SessionState  `json:"state"`
	Booking   *BookingDraft `json:"booking,omitempty"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt int64         `json:"createdAt"`
	UpdatedAt int64         `json:"updatedAt"`
}
