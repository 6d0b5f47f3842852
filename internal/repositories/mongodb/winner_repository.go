package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// Create creates a new winner record
func (r *WinnerRepository) Create(ctx context.Context, winner *models.Winner) error {
	res, err := r.collection.InsertOne(ctx, winner)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		winner.ID = oid
	}
	return nil
}

// FindAll returns winner history, most recent draw first
func (r *WinnerRepository) FindAll(ctx context.Context) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.M{"drawDate": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	winners := []*models.Winner{}
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	return winners, nil
}

// Delete deletes a single winner record
func (r *WinnerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteAll clears the winner history and reports how many records were removed
func (r *WinnerRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
