package galleryRepo

import (
	"context"

	"atelier/database"
	"atelier/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPhotoRepo struct {
	coll *mongo.Collection
}

// NewMongoPhotoRepo returns a PhotoRepository backed by MongoDB.
func NewMongoPhotoRepo() PhotoRepository {
	coll := database.MongoClient.Database("atelier").Collection("photos")
	return &mongoPhotoRepo{coll: coll}
}

func (r *mongoPhotoRepo) Create(ctx context.Context, photo models.Photo) error {
	_, err := r.coll.InsertOne(ctx, photo)
	return err
}

func (r *mongoPhotoRepo) ListAll(ctx context.Context) ([]models.Photo, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoPhotoRepo) ListByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	return r.find(ctx, bson.M{"category": category})
}

// find runs a listing query, newest uploads first.
func (r *mongoPhotoRepo) find(ctx context.Context, filter bson.M) ([]models.Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}
