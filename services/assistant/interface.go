// File: services/assistant/interface.go
package assistant

import (
	"context"

	"atelier/models"
)

// Responder produces the assistant's reply for one booking conversation
// turn. Implementations receive the full message history, the current
// session state, and the booking draft so far, and return free text plus
// an optional action hint and any additional fields they recognized.
type Responder interface {
	Chat(ctx context.Context, messages []models.ChatMessage, state models.SessionState, draft *models.BookingDraft) (*models.AssistantReply, error)
}

// Completer is a plain text-completion capability over a message history,
// used by the notebook co-writer.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error)
}

// InquiryAnalyzer classifies a free-form contact message and drafts a
// reply.
type InquiryAnalyzer interface {
	AnalyzeInquiry(ctx context.Context, message string) (*models.InquiryResult, error)
}
