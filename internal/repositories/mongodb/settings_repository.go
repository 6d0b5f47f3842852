package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// SettingsRepository implements repositories.SettingsRepository over the
// singleton campaign settings document.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) repositories.SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("settings"),
	}
}

// Get retrieves the campaign settings, creating defaults on first read
func (r *SettingsRepository) Get(ctx context.Context) (*models.CampaignSettings, error) {
	var settings models.CampaignSettings
	err := r.collection.FindOne(ctx, bson.M{"_id": models.CampaignSettingsID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = models.CampaignSettings{
			ID:             models.CampaignSettingsID,
			ValuePerCoupon: 50,
			UpdatedAt:      time.Now(),
		}
		if _, err := r.collection.InsertOne(ctx, settings); err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update replaces the campaign settings document
func (r *SettingsRepository) Update(ctx context.Context, settings *models.CampaignSettings) error {
	settings.ID = models.CampaignSettingsID
	settings.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": models.CampaignSettingsID}, settings, opts)
	return err
}

// SetWinner records the last drawn coupon number on the settings document
func (r *SettingsRepository) SetWinner(ctx context.Context, couponNumber string) error {
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": bson.M{
		"winner":    couponNumber,
		"updatedAt": time.Now(),
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": models.CampaignSettingsID}, update, opts)
	return err
}
