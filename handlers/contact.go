package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"atelier/services/assistant"
	"atelier/utils"
)

// ContactHandler answers free-form portfolio inquiries.
type ContactHandler struct {
	Analyzer assistant.InquiryAnalyzer
}

func NewContactHandler(analyzer assistant.InquiryAnalyzer) *ContactHandler {
	return &ContactHandler{Analyzer: analyzer}
}

// HandleInquiry classifies the message and returns a drafted response.
func (h *ContactHandler) HandleInquiry(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "message is required")
		return
	}

	result, err := h.Analyzer.AnalyzeInquiry(c.Request.Context(), input.Message)
	if err != nil {
		utils.GetLogger().Error("inquiry analysis failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process inquiry")
		return
	}
	utils.JSONData(c, result)
}
