package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// CounterRepository implements repositories.CounterRepository on top of
// a single counter document in the counters collection.
type CounterRepository struct {
	collection *mongo.Collection
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(db *mongo.Database) repositories.CounterRepository {
	return &CounterRepository{
		collection: db.Collection("counters"),
	}
}

// NextNumber atomically increments the coupon counter and returns the
// new value. The upsert creates the document lazily on first use, so an
// absent counter behaves as lastNumber = 0.
func (r *CounterRepository) NextNumber(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.SequenceCounter
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": models.CouponCounterID},
		bson.M{"$inc": bson.M{"lastNumber": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.LastNumber, nil
}
