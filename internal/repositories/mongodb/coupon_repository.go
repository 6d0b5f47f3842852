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

// CouponRepository implements the repositories.CouponRepository interface
type CouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new CouponRepository and ensures the
// unique compound index that closes the duplicate-registration race.
func NewCouponRepository(ctx context.Context, db *mongo.Database) (repositories.CouponRepository, error) {
	collection := db.Collection("coupons")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cpf", Value: 1}, {Key: "numeroCompra", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("cpf_numeroCompra_unique"),
	})
	if err != nil {
		return nil, err
	}

	return &CouponRepository{collection: collection}, nil
}

// Create inserts a new coupon. The registration timestamp is
// server-assigned here.
func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	coupon.RegisteredAt = time.Now()
	res, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateCoupon
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		coupon.ID = oid
	}
	return nil
}

// FindByCPF finds all coupons registered under a cpf, newest first
func (r *CouponRepository) FindByCPF(ctx context.Context, cpf string) ([]*models.Coupon, error) {
	opts := options.Find().SetSort(bson.M{"dataCadastro": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"cpf": cpf}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coupons := []*models.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// FindByCPFAndPurchaseRef finds the coupon matching the compound key, or
// mongo.ErrNoDocuments when none exists.
func (r *CouponRepository) FindByCPFAndPurchaseRef(ctx context.Context, cpf, purchaseRef string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.collection.FindOne(ctx, bson.M{"cpf": cpf, "numeroCompra": purchaseRef}).Decode(&coupon)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// FindAll returns the full coupon set ordered by coupon number
func (r *CouponRepository) FindAll(ctx context.Context) ([]*models.Coupon, error) {
	opts := options.Find().SetSort(bson.M{"numeroCupom": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coupons := []*models.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// Count counts all coupons
func (r *CouponRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
