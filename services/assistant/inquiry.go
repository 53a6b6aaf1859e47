package assistant

import (
	"context"
	"strings"

	"atelier/models"
	"atelier/utils"

	"go.uber.org/zap"
)

const inquiryPrompt = `You are a helpful assistant for Shriya Sateesh's photography portfolio website.
Analyze the user's message and determine if they want to:
1. Book a photography session (intent: booking)
2. Ask a question about services, pricing, or portfolio (intent: question)
3. General conversation (intent: general)

Photography services offered:
- Portrait Photography
- Event Photography
- Wedding Photography
- Commercial Photography
- Photojournalism
- Landscape Photography
- Theatre Photography
- Storytelling Photography

Provide a helpful, friendly response.`

// AnalyzeInquiry classifies a contact-form message by keyword and drafts
// a reply with the model. Classification never depends on the model, so
// intent and topic stay stable even when generation fails.
func (g *GeminiResponder) AnalyzeInquiry(ctx context.Context, message string) (*models.InquiryResult, error) {
	intent, topic := classifyInquiry(message)

	response, err := g.generate(ctx, flattenTranscript(inquiryPrompt, []models.ChatMessage{
		{Role: models.RoleUser, Content: message},
	}))
	if err != nil {
		utils.GetLogger().Error("gemini inquiry failed", zap.Error(err))
		return &models.InquiryResult{
			Intent:   intent,
			Topic:    topic,
			Response: "Thank you for your message! How can I help you today?",
		}, nil
	}

	return &models.InquiryResult{Intent: intent, Topic: topic, Response: response}, nil
}

func classifyInquiry(message string) (intent, topic string) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "book"),
		strings.Contains(lower, "schedule"),
		strings.Contains(lower, "appointment"),
		strings.Contains(lower, "session"):
		return models.IntentBooking, "booking"
	case strings.Contains(lower, "price"),
		strings.Contains(lower, "cost"),
		strings.Contains(lower, "how much"):
		return models.IntentQuestion, "pricing"
	case strings.Contains(lower, "service"):
		return models.IntentQuestion, "services"
	case strings.Contains(lower, "portfolio"):
		return models.IntentQuestion, "portfolio"
	default:
		return models.IntentGeneral, ""
	}
}
