package assistant

import (
	"strings"

	"atelier/models"
)

// DetermineAction derives the follow-up action hint from the reply text
// and the conversation's position.
func DetermineAction(responseText string, state models.SessionState, draft *models.BookingDraft) models.AssistantAction {
	if state == models.StateCheckingAvailability && draft != nil && draft.PreferredDate != "" {
		return models.ActionCheckAvailability
	}
	if state == models.StateConfirming {
		return models.ActionSchedule
	}

	lower := strings.ToLower(responseText)
	if strings.Contains(lower, "available") ||
		strings.Contains(lower, "availability") ||
		strings.Contains(lower, "time slots") {
		return models.ActionCheckAvailability
	}

	return models.ActionNone
}
