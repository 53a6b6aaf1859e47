package assistant

import (
	"strings"

	"atelier/models"
)

// buildBookingPrompt assembles the system prompt for a booking turn,
// including the fields collected so far and stage-specific guidance.
func buildBookingPrompt(state models.SessionState, draft *models.BookingDraft) string {
	var sb strings.Builder
	sb.WriteString(`You are a friendly and professional scheduling assistant for Shriya Sateesh, a professional photographer.

Your role is to help clients book photography sessions. Be conversational, warm, and helpful.

Photography services available:
1. Portrait Photography (1 hour)
2. Event Photography (4 hours)
3. Wedding Photography (8 hours)
4. Commercial Photography (2 hours)
5. Photojournalism (3 hours)
6. Landscape Photography (2 hours)
7. Theatre Photography (3 hours)
8. Storytelling Photography (1.5 hours)

Current session state: `)
	sb.WriteString(string(state))
	sb.WriteString("\n")

	if draft != nil && !draft.Empty() {
		sb.WriteString("\n\nInformation collected so far:\n")
		if draft.ServiceType != "" {
			sb.WriteString("Service: " + string(draft.ServiceType) + "\n")
		}
		if draft.Name != "" {
			sb.WriteString("Name: " + draft.Name + "\n")
		}
		if draft.Email != "" {
			sb.WriteString("Email: " + draft.Email + "\n")
		}
		if draft.Phone != "" {
			sb.WriteString("Phone: " + draft.Phone + "\n")
		}
		if draft.PreferredDate != "" {
			sb.WriteString("Date: " + draft.PreferredDate + "\n")
		}
		if draft.PreferredTime != "" {
			sb.WriteString("Time: " + draft.PreferredTime + "\n")
		}
	}

	switch state {
	case models.StateInitiated:
		sb.WriteString("\n\nAsk about the type of photography service they need.")
	case models.StateCollectingInfo:
		sb.WriteString("\n\nCollect their name, email, and phone number (optional).")
	case models.StateCheckingAvailability:
		sb.WriteString("\n\nAsk for their preferred date and time.")
	case models.StateConfirming:
		sb.WriteString("\n\nSummarize the booking details and ask for confirmation.")
	}

	return sb.String()
}

// SongwritingPrompt steers the notebook co-writer.
const SongwritingPrompt = `You are an expert songwriting assistant. Help users with:
- Writing and refining lyrics
- Finding rhymes and synonyms
- Brainstorming creative ideas and themes
- Improving song structure and flow
- Providing constructive feedback

Be creative, supportive, and insightful. Keep responses focused on songwriting.`

// flattenTranscript renders a system prompt plus message history as a
// single text prompt for models without a native chat role interface.
func flattenTranscript(systemPrompt string, messages []models.ChatMessage) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleAssistant:
			sb.WriteString("Assistant: ")
		default:
			sb.WriteString("User: ")
		}
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("Assistant:")
	return sb.String()
}
