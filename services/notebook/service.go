package notebook

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"atelier/models"
	"atelier/services/assistant"
)

// DefaultSessionID is used when the client does not supply one.
const DefaultSessionID = "default-session"

// CurrentNoteID is the well-known id of the working draft.
const CurrentNoteID = "current-note"

const recordingFolder = "atelier/recordings"

// contextWindow is how many recent messages are sent to the model.
const contextWindow = 10

// Chat records the user message, asks the co-writer for a reply over the
// recent history, and records the reply.
func (s *DefaultNotebookService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	userMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Content:   message,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.ChatLog.Append(ctx, sessionID, userMsg); err != nil {
		return "", fmt.Errorf("append user message: %w", err)
	}

	history, err := s.ChatLog.List(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load chat history: %w", err)
	}
	if len(history) > contextWindow {
		history = history[len(history)-contextWindow:]
	}

	reply, err := s.Completer.Complete(ctx, assistant.SongwritingPrompt, history)
	if err != nil {
		return "", fmt.Errorf("co-writer reply: %w", err)
	}

	assistantMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.ChatLog.Append(ctx, sessionID, assistantMsg); err != nil {
		return "", fmt.Errorf("append assistant message: %w", err)
	}
	return reply, nil
}

func (s *DefaultNotebookService) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	messages, err := s.ChatLog.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages, nil
}

// CurrentNote loads a note by id, defaulting to the working draft. A
// missing note comes back as an empty untitled draft rather than an
// error so the editor always has something to open.
func (s *DefaultNotebookService) CurrentNote(ctx context.Context, id string) (*models.Note, error) {
	if id == "" {
		id = CurrentNoteID
	}
	note, err := s.Repo.GetNote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load note %s: %w", id, err)
	}
	if note == nil {
		return &models.Note{ID: id, Title: "Untitled", Content: ""}, nil
	}
	return note, nil
}

func (s *DefaultNotebookService) SaveNote(ctx context.Context, note models.Note) (*models.Note, error) {
	if note.ID == "" {
		note.ID = CurrentNoteID
	}
	if note.Title == "" {
		note.Title = "Untitled"
	}
	note.LastModified = time.Now().UnixMilli()
	if err := s.Repo.SaveNote(ctx, note); err != nil {
		return nil, fmt.Errorf("save note %s: %w", note.ID, err)
	}
	return &note, nil
}

func (s *DefaultNotebookService) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.Repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// UploadRecording stores the audio in Cloudinary and records metadata.
func (s *DefaultNotebookService) UploadRecording(ctx context.Context, file io.Reader, name, contentType string, size int64) (*models.Recording, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       recordingFolder,
		ResourceType: "video", // Cloudinary stores audio under the video resource type
	})
	if err != nil {
		return nil, fmt.Errorf("upload recording %q: %w", name, err)
	}

	rec := models.Recording{
		ID:          uuid.New().String(),
		Name:        name,
		PublicID:    result.PublicID,
		URL:         result.SecureURL,
		ContentType: contentType,
		Size:        size,
		UploadedAt:  time.Now().UnixMilli(),
	}
	if err := s.Repo.CreateRecording(ctx, rec); err != nil {
		return nil, fmt.Errorf("record recording metadata: %w", err)
	}
	return &rec, nil
}

func (s *DefaultNotebookService) ListRecordings(ctx context.Context) ([]models.Recording, error) {
	recs, err := s.Repo.ListRecordings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	return recs, nil
}

func (s *DefaultNotebookService) GetRecording(ctx context.Context, id string) (*models.Recording, error) {
	return s.Repo.GetRecording(ctx, id)
}

// DeleteRecording removes the stored audio first, then the metadata, so
// a failed storage delete never leaves an orphaned record pointing at
// nothing.
func (s *DefaultNotebookService) DeleteRecording(ctx context.Context, id string) error {
	rec, err := s.Repo.GetRecording(ctx, id)
	if err != nil {
		return fmt.Errorf("load recording %s: %w", id, err)
	}
	if rec == nil {
		return nil
	}
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     rec.PublicID,
		ResourceType: "video",
	}); err != nil {
		return fmt.Errorf("delete stored audio %s: %w", rec.PublicID, err)
	}
	if err := s.Repo.DeleteRecording(ctx, id); err != nil {
		return fmt.Errorf("delete recording %s: %w", id, err)
	}
	return nil
}

func (s *DefaultNotebookService) GetProfile(ctx context.Context) (*models.Profile, error) {
	return s.Repo.GetProfile(ctx)
}

func (s *DefaultNotebookService) SaveProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	profile.UpdatedAt = time.Now().UnixMilli()
	if err := s.Repo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &profile, nil
}

// Stats reports the profile page counters.
func (s *DefaultNotebookService) Stats(ctx context.Context) (*models.NotebookStats, error) {
	songs, err := s.Repo.CountNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	recordings, err := s.Repo.CountRecordings(ctx)
	if err != nil {
		return nil, fmt.Errorf("count recordings: %w", err)
	}
	history, err := s.ChatLog.List(ctx, DefaultSessionID)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	return &models.NotebookStats{
		Songs:      songs,
		Recordings: recordings,
		Chats:      len(history),
	}, nil
}
