package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"atelier/models"
	"atelier/services/conversation"
)

// stubConversationService returns fixed results per call.
type stubConversationService struct {
	session    *models.ConversationSession
	confirmErr error
}

func (s *stubConversationService) Init(ctx context.Context) (*models.ConversationSession, error) {
	return s.session, nil
}

func (s *stubConversationService) Message(ctx context.Context, sessionID, content string) (*conversation.MessageResult, error) {
	return nil, conversation.ErrSessionNotFound
}

func (s *stubConversationService) Status(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	return s.session, nil
}

func (s *stubConversationService) Confirm(ctx context.Context, sessionID string) (*conversation.ConfirmResult, error) {
	return nil, s.confirmErr
}

func (s *stubConversationService) Cancel(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	return s.session, nil
}

func conversationRouter(svc conversation.ConversationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewConversationHandler(svc)
	r.GET("/api/chat/session/:id", h.GetSession)
	r.POST("/api/chat/confirm", h.ConfirmBooking)
	return r
}

func TestGetSessionUnknownReturnsNull(t *testing.T) {
	r := conversationRouter(&stubConversationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/session/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":null}`, w.Body.String())
}

func TestGetSessionKnownReturnsSession(t *testing.T) {
	r := conversationRouter(&stubConversationService{
		session: &models.ConversationSession{ID: "s1", State: models.StateInitiated},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/session/s1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"s1"`)
}

func TestConfirmConflictMapsTo409(t *testing.T) {
	r := conversationRouter(&stubConversationService{confirmErr: conversation.ErrSlotConflict})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/confirm",
		strings.NewReader(`{"sessionId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "choose another time")
}
