package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"atelier/models"
	"atelier/services/notebook"
	"atelier/utils"
)

// NotebookHandler exposes the songwriting notebook endpoints. The chat
// session is selected with the X-Session-ID header.
type NotebookHandler struct {
	Svc notebook.NotebookService
}

func NewNotebookHandler(svc notebook.NotebookService) *NotebookHandler {
	return &NotebookHandler{Svc: svc}
}

func sessionID(c *gin.Context) string {
	return c.GetHeader("X-Session-ID")
}

// Chat sends one message to the co-writer.
func (h *NotebookHandler) Chat(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.Svc.Chat(c.Request.Context(), sessionID(c), input.Message)
	if err != nil {
		utils.GetLogger().Error("notebook chat failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message")
		return
	}
	utils.JSONData(c, gin.H{"response": reply})
}

// ChatHistory returns the full co-writer transcript.
func (h *NotebookHandler) ChatHistory(c *gin.Context) {
	messages, err := h.Svc.History(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.GetLogger().Error("notebook history failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load history")
		return
	}
	utils.JSONData(c, messages)
}

// CurrentNote loads the working draft, or a note by id.
func (h *NotebookHandler) CurrentNote(c *gin.Context) {
	note, err := h.Svc.CurrentNote(c.Request.Context(), c.Query("id"))
	if err != nil {
		utils.GetLogger().Error("note load failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load note")
		return
	}
	utils.JSONData(c, note)
}

// SaveNote upserts a note.
func (h *NotebookHandler) SaveNote(c *gin.Context) {
	var input models.Note
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid note payload")
		return
	}

	note, err := h.Svc.SaveNote(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Error("note save failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save note")
		return
	}
	utils.JSONData(c, note)
}

// ListNotes returns all saved notes.
func (h *NotebookHandler) ListNotes(c *gin.Context) {
	notes, err := h.Svc.ListNotes(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("note listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notes")
		return
	}
	utils.JSONData(c, notes)
}

// UploadRecording accepts a multipart audio upload.
func (h *NotebookHandler) UploadRecording(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	rec, err := h.Svc.UploadRecording(c.Request.Context(), file, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), fileHeader.Size)
	if err != nil {
		utils.GetLogger().Error("recording upload failed", zap.String("file", fileHeader.Filename), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload recording")
		return
	}
	utils.JSONData(c, rec)
}

// ListRecordings returns recording metadata, newest first.
func (h *NotebookHandler) ListRecordings(c *gin.Context) {
	recs, err := h.Svc.ListRecordings(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("recording listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list recordings")
		return
	}
	utils.JSONData(c, recs)
}

// PlayRecording redirects to the stored audio URL.
func (h *NotebookHandler) PlayRecording(c *gin.Context) {
	rec, err := h.Svc.GetRecording(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("recording load failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load recording")
		return
	}
	if rec == nil {
		utils.JSONError(c, http.StatusNotFound, "recording not found")
		return
	}
	c.Redirect(http.StatusFound, rec.URL)
}

// DeleteRecording removes the audio and its metadata.
func (h *NotebookHandler) DeleteRecording(c *gin.Context) {
	if err := h.Svc.DeleteRecording(c.Request.Context(), c.Param("id")); err != nil {
		utils.GetLogger().Error("recording delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete recording")
		return
	}
	utils.JSONData(c, gin.H{"deleted": true})
}

// GetProfile returns the songwriter profile.
func (h *NotebookHandler) GetProfile(c *gin.Context) {
	profile, err := h.Svc.GetProfile(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("profile load failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load profile")
		return
	}
	utils.JSONData(c, profile)
}

// SaveProfile replaces the songwriter profile.
func (h *NotebookHandler) SaveProfile(c *gin.Context) {
	var input models.Profile
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid profile payload")
		return
	}

	profile, err := h.Svc.SaveProfile(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Error("profile save failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}
	utils.JSONData(c, profile)
}

// Stats returns the profile page counters.
func (h *NotebookHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("stats load failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	utils.JSONData(c, stats)
}
