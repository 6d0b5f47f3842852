package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// ScratchCouponRepository implements the repositories.ScratchCouponRepository interface
type ScratchCouponRepository struct {
	collection *mongo.Collection
}

// NewScratchCouponRepository creates a new ScratchCouponRepository
func NewScratchCouponRepository(db *mongo.Database) repositories.ScratchCouponRepository {
	return &ScratchCouponRepository{
		collection: db.Collection("scratch_coupons"),
	}
}

// Create inserts a new scratch coupon, always in the available state
func (r *ScratchCouponRepository) Create(ctx context.Context, sc *models.ScratchCoupon) error {
	sc.Status = models.ScratchStatusAvailable
	sc.IssuedAt = time.Now()
	sc.ScratchedAt = nil

	res, err := r.collection.InsertOne(ctx, sc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sc.ID = oid
	}
	return nil
}

// FindByID finds a scratch coupon by ID
func (r *ScratchCouponRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ScratchCoupon, error) {
	var sc models.ScratchCoupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sc)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// FindByCPF finds all scratch coupons issued to a cpf
func (r *ScratchCouponRepository) FindByCPF(ctx context.Context, cpf string) ([]*models.ScratchCoupon, error) {
	opts := options.Find().SetSort(bson.M{"liberadoEm": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"cpf": cpf}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	scratches := []*models.ScratchCoupon{}
	if err := cursor.All(ctx, &scratches); err != nil {
		return nil, err
	}
	return scratches, nil
}

// FindAll returns all scratch coupons, newest issuance first
func (r *ScratchCouponRepository) FindAll(ctx context.Context) ([]*models.ScratchCoupon, error) {
	opts := options.Find().SetSort(bson.M{"liberadoEm": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	scratches := []*models.ScratchCoupon{}
	if err := cursor.All(ctx, &scratches); err != nil {
		return nil, err
	}
	return scratches, nil
}

// MarkScratched flips an available scratch coupon to raspado and stamps
// the reveal time. The filter on status makes the transition one-way: a
// coupon already revealed matches nothing and the original raspadoEm is
// never overwritten. Returns false when no available coupon matched.
func (r *ScratchCouponRepository) MarkScratched(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.ScratchStatusAvailable},
		bson.M{"$set": bson.M{
			"status":    models.ScratchStatusScratched,
			"raspadoEm": time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes a scratch coupon
func (r *ScratchCouponRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
