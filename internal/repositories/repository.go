package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/supermax-promo/cupom-backend/internal/models"
)

// ErrDuplicateCoupon is returned by CouponRepository.Create when the
// unique (cpf, numeroCompra) key rejects the insert.
var ErrDuplicateCoupon = errors.New("coupon already registered for this cpf and purchase")

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	FindByCPF(ctx context.Context, cpf string) ([]*models.Coupon, error)
	FindByCPFAndPurchaseRef(ctx context.Context, cpf, purchaseRef string) (*models.Coupon, error)
	FindAll(ctx context.Context) ([]*models.Coupon, error)
	Count(ctx context.Context) (int64, error)
}

// CounterRepository defines the interface for the coupon sequence counter.
// NextNumber must be atomic: no two concurrent callers may observe the
// same value.
type CounterRepository interface {
	NextNumber(ctx context.Context) (int64, error)
}

// WinnerRepository defines the interface for winner history operations
type WinnerRepository interface {
	Create(ctx context.Context, winner *models.Winner) error
	FindAll(ctx context.Context) ([]*models.Winner, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// ScratchCouponRepository defines the interface for scratch coupon operations
type ScratchCouponRepository interface {
	Create(ctx context.Context, sc *models.ScratchCoupon) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ScratchCoupon, error)
	FindByCPF(ctx context.Context, cpf string) ([]*models.ScratchCoupon, error)
	FindAll(ctx context.Context) ([]*models.ScratchCoupon, error)
	MarkScratched(ctx context.Context, id primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SettingsRepository defines the interface for the singleton campaign settings
type SettingsRepository interface {
	Get(ctx context.Context) (*models.CampaignSettings, error)
	Update(ctx context.Context, settings *models.CampaignSettings) error
	SetWinner(ctx context.Context, couponNumber string) error
}
