package notebookRepo

import (
	"context"

	"atelier/models"
)

// NotebookRepository persists the songwriting notebook: notes, recording
// metadata, and the single profile document.
type NotebookRepository interface {
	SaveNote(ctx context.Context, note models.Note) error
	GetNote(ctx context.Context, id string) (*models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	CountNotes(ctx context.Context) (int, error)

	CreateRecording(ctx context.Context, rec models.Recording) error
	GetRecording(ctx context.Context, id string) (*models.Recording, error)
	ListRecordings(ctx context.Context) ([]models.Recording, error)
	DeleteRecording(ctx context.Context, id string) error
	CountRecordings(ctx context.Context) (int, error)

	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
}
