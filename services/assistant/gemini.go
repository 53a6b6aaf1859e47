// File: services/assistant/gemini.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"atelier/models"
	"atelier/utils"

	"go.uber.org/zap"
)

const fallbackReply = "I apologize, but I'm having trouble processing your request. Could you please rephrase that?"

// GeminiResponder answers booking and notebook conversations with a
// Gemini generative model.
type GeminiResponder struct {
	model *genai.GenerativeModel
}

func NewGeminiResponder(apiKey string) *GeminiResponder {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiResponder{model: model}
}

// Chat generates a reply for the current booking turn. Model failures
// degrade to a canned apology so the conversation can continue.
func (g *GeminiResponder) Chat(ctx context.Context, messages []models.ChatMessage, state models.SessionState, draft *models.BookingDraft) (*models.AssistantReply, error) {
	prompt := flattenTranscript(buildBookingPrompt(state, draft), messages)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("gemini chat failed", zap.Error(err))
		return &models.AssistantReply{Text: fallbackReply, Action: models.ActionNone}, nil
	}

	return &models.AssistantReply{
		Text:   text,
		Action: DetermineAction(text, state, draft),
	}, nil
}

// Complete runs a plain completion over the message history.
func (g *GeminiResponder) Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error) {
	return g.generate(ctx, flattenTranscript(systemPrompt, messages))
}

func (g *GeminiResponder) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
