package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/supermax-promo/cupom-backend/internal/models"
)

// SequenceService defines the interface for coupon code generation
type SequenceService interface {
	// NextCode returns the next coupon code, e.g. SM-00042. Codes are
	// strictly increasing and never handed to two callers.
	NextCode(ctx context.Context) (string, error)
}

// CouponService defines the interface for registration and lookup
type CouponService interface {
	// Register validates the request, enforces the duplicate-registration
	// rule and persists a new coupon with a freshly generated code.
	Register(ctx context.Context, req *models.RegisterCouponRequest) (*models.Coupon, error)

	// FindByCPF retrieves all coupons and scratch coupons held by a cpf,
	// grouped and sorted for display. No match is not an error.
	FindByCPF(ctx context.Context, cpf string) (*models.LookupResult, error)

	// ListAll returns every registered coupon (admin listing)
	ListAll(ctx context.Context) ([]*models.Coupon, error)

	// Count returns the number of registered coupons
	Count(ctx context.Context) (int64, error)
}

// DrawService defines the interface for raffle draws and winner history
type DrawService interface {
	// DrawWinner selects one uniformly random coupon and persists it as a
	// winner snapshot. The coupon pool is left untouched.
	DrawWinner(ctx context.Context) (*models.Winner, error)

	// ListWinners returns winner history, most recent draw first
	ListWinners(ctx context.Context) ([]*models.Winner, error)

	// DeleteWinner removes a single winner record
	DeleteWinner(ctx context.Context, id primitive.ObjectID) error

	// DeleteAllWinners clears the winner history
	DeleteAllWinners(ctx context.Context) (int64, error)
}

// ScratchCouponService defines the interface for the scratch coupon lifecycle
type ScratchCouponService interface {
	Issue(ctx context.Context, req *models.IssueScratchCouponRequest) (*models.ScratchCoupon, error)
	Reveal(ctx context.Context, id primitive.ObjectID) (*models.ScratchCoupon, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListAll(ctx context.Context) ([]*models.ScratchCoupon, error)
	DuplicateTemplate(ctx context.Context, id primitive.ObjectID) (*models.ScratchTemplate, error)
}

// SettingsService defines the interface for campaign settings
type SettingsService interface {
	Get(ctx context.Context) (*models.CampaignSettings, error)
	Update(ctx context.Context, req *models.UpdateSettingsRequest, updatedBy string) (*models.CampaignSettings, error)
}

// AuthService defines the interface for the admin gate
type AuthService interface {
	// Login checks the admin password and returns a signed session token
	Login(ctx context.Context, password string) (string, error)
}
