package notebookRepo

import (
	"context"
	"errors"

	"atelier/database"
	"atelier/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// profileKey is the id of the single profile document.
const profileKey = "user-profile"

type mongoNotebookRepo struct {
	notes      *mongo.Collection
	recordings *mongo.Collection
	profiles   *mongo.Collection
}

// NewMongoNotebookRepo returns a NotebookRepository backed by MongoDB.
func NewMongoNotebookRepo() NotebookRepository {
	db := database.MongoClient.Database("atelier")
	return &mongoNotebookRepo{
		notes:      db.Collection("notes"),
		recordings: db.Collection("recordings"),
		profiles:   db.Collection("profiles"),
	}
}

// SaveNote upserts a note by its id.
func (r *mongoNotebookRepo) SaveNote(ctx context.Context, note models.Note) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.notes.ReplaceOne(ctx, bson.M{"id": note.ID}, note, opts)
	return err
}

// GetNote returns a note by id, or (nil, nil) if absent.
func (r *mongoNotebookRepo) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	err := r.notes.FindOne(ctx, bson.M{"id": id}).Decode(&note)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes returns all saved notes, most recently modified first.
func (r *mongoNotebookRepo) ListNotes(ctx context.Context) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastModified", Value: -1}})
	cursor, err := r.notes.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *mongoNotebookRepo) CountNotes(ctx context.Context) (int, error) {
	n, err := r.notes.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (r *mongoNotebookRepo) CreateRecording(ctx context.Context, rec models.Recording) error {
	_, err := r.recordings.InsertOne(ctx, rec)
	return err
}

// GetRecording returns a recording by id, or (nil, nil) if absent.
func (r *mongoNotebookRepo) GetRecording(ctx context.Context, id string) (*models.Recording, error) {
	var rec models.Recording
	err := r.recordings.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecordings returns all recordings, newest first.
func (r *mongoNotebookRepo) ListRecordings(ctx context.Context) ([]models.Recording, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := r.recordings.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.Recording
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *mongoNotebookRepo) DeleteRecording(ctx context.Context, id string) error {
	res, err := r.recordings.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("recording not found")
	}
	return nil
}

func (r *mongoNotebookRepo) CountRecordings(ctx context.Context) (int, error) {
	n, err := r.recordings.CountDocuments(ctx, bson.M{})
	return int(n), err
}

// GetProfile returns the profile document, or an empty profile when none
// has been saved yet.
func (r *mongoNotebookRepo) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.profiles.FindOne(ctx, bson.M{"_id": profileKey}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return &models.Profile{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *mongoNotebookRepo) SaveProfile(ctx context.Context, profile models.Profile) error {
	opts := options.Replace().SetUpsert(true)
	doc := bson.M{
		"_id":         profileKey,
		"displayName": profile.DisplayName,
		"bio":         profile.Bio,
		"genres":      profile.Genres,
		"goals":       profile.Goals,
		"updatedAt":   profile.UpdatedAt,
	}
	_, err := r.profiles.ReplaceOne(ctx, bson.M{"_id": profileKey}, doc, opts)
	return err
}
