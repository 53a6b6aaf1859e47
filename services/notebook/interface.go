// File: services/notebook/interface.go
package notebook

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"

	notebookRepo "atelier/database/repository/notebook"
	"atelier/models"
	"atelier/services/assistant"
	"atelier/services/memory"
)

// NotebookService backs the songwriting notebook: the co-writer chat,
// note drafts, audio recordings, and the profile page.
type NotebookService interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
	History(ctx context.Context, sessionID string) ([]models.ChatMessage, error)

	CurrentNote(ctx context.Context, id string) (*models.Note, error)
	SaveNote(ctx context.Context, note models.Note) (*models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)

	UploadRecording(ctx context.Context, file io.Reader, name, contentType string, size int64) (*models.Recording, error)
	ListRecordings(ctx context.Context) ([]models.Recording, error)
	GetRecording(ctx context.Context, id string) (*models.Recording, error)
	DeleteRecording(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) (*models.Profile, error)
	Stats(ctx context.Context) (*models.NotebookStats, error)
}

type DefaultNotebookService struct {
	Repo      notebookRepo.NotebookRepository
	Completer assistant.Completer
	ChatLog   memory.HistoryStore
	cld       *cloudinary.Cloudinary
}

func NewDefaultNotebookService(repo notebookRepo.NotebookRepository, completer assistant.Completer, chatLog memory.HistoryStore, cld *cloudinary.Cloudinary) *DefaultNotebookService {
	return &DefaultNotebookService{
		Repo:      repo,
		Completer: completer,
		ChatLog:   chatLog,
		cld:       cld,
	}
}
