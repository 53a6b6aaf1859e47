// File: handlers/conversation.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"atelier/services/conversation"
	"atelier/utils"
)

// ConversationHandler exposes the booking chat endpoints.
type ConversationHandler struct {
	Svc conversation.ConversationService
}

func NewConversationHandler(svc conversation.ConversationService) *ConversationHandler {
	return &ConversationHandler{Svc: svc}
}

// StartSession creates a new booking conversation.
func (h *ConversationHandler) StartSession(c *gin.Context) {
	session, err := h.Svc.Init(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.JSONData(c, gin.H{
		"sessionId": session.ID,
		"message":   session.Messages[0].Content,
		"state":     session.State,
	})
}

// SendMessage applies one user turn to an existing session.
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "sessionId and message are required")
		return
	}

	result, err := h.Svc.Message(c.Request.Context(), input.SessionID, input.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.JSONData(c, result)
}

// GetSession returns the full session transcript and state. An unknown
// or expired session yields a null payload, not an error.
func (h *ConversationHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if session == nil {
		utils.JSONData(c, nil)
		return
	}
	utils.JSONData(c, session)
}

// ConfirmBooking commits the session's drafted booking.
func (h *ConversationHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "sessionId is required")
		return
	}

	result, err := h.Svc.Confirm(c.Request.Context(), input.SessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.JSONData(c, result)
}

// CancelSession ends the conversation.
func (h *ConversationHandler) CancelSession(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "sessionId is required")
		return
	}

	session, err := h.Svc.Cancel(c.Request.Context(), input.SessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.JSONData(c, gin.H{"state": session.State})
}

// fail maps service errors onto HTTP statuses.
func (h *ConversationHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, conversation.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found")
	case errors.Is(err, conversation.ErrNoBookingToConfirm):
		utils.JSONError(c, http.StatusBadRequest, "no booking to confirm")
	case errors.Is(err, conversation.ErrSlotConflict):
		utils.JSONError(c, http.StatusConflict, "This time slot has been booked. Please choose another time.")
	default:
		utils.GetLogger().Error("conversation request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
