package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// DrawServiceImpl runs raffle draws and manages winner history
type DrawServiceImpl struct {
	couponRepo   repositories.CouponRepository
	winnerRepo   repositories.WinnerRepository
	settingsRepo repositories.SettingsRepository
	rng          *rand.Rand
}

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

// NewDrawService creates a new DrawServiceImpl. rng may be nil, in which
// case a time-seeded source is used; tests inject a fixed seed.
func NewDrawService(
	couponRepo repositories.CouponRepository,
	winnerRepo repositories.WinnerRepository,
	settingsRepo repositories.SettingsRepository,
	rng *rand.Rand,
) *DrawServiceImpl {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DrawServiceImpl{
		couponRepo:   couponRepo,
		winnerRepo:   winnerRepo,
		settingsRepo: settingsRepo,
		rng:          rng,
	}
}

// DrawWinner selects one uniformly random coupon from the full set and
// persists a snapshot of it. Previous winners are not excluded and the
// coupon pool is unaffected, so repeat wins are possible. The winning
// code is also mirrored onto the campaign settings for the public page;
// that write is best-effort and never fails the draw.
func (s *DrawServiceImpl) DrawWinner(ctx context.Context) (*models.Winner, error) {
	coupons, err := s.couponRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load coupon pool: %w", err)
	}
	if len(coupons) == 0 {
		return nil, ErrEmptyPool
	}

	drawn := coupons[s.rng.Intn(len(coupons))]
	winner := models.NewWinnerFromCoupon(drawn, time.Now())

	if err := s.winnerRepo.Create(ctx, winner); err != nil {
		zap.L().Error("failed to persist winner", zap.Error(err), zap.String("couponNumber", drawn.CouponNumber))
		return nil, fmt.Errorf("failed to save winner: %w", err)
	}

	if err := s.settingsRepo.SetWinner(ctx, winner.CouponNumber); err != nil {
		// No rollback of the winner record; the history entry is the
		// source of truth and the settings mirror is cosmetic.
		zap.L().Warn("failed to mirror winner onto settings", zap.Error(err))
	}

	zap.L().Info("draw completed",
		zap.String("couponNumber", winner.CouponNumber),
		zap.Int("poolSize", len(coupons)))
	return winner, nil
}

// ListWinners returns winner history, most recent draw first
func (s *DrawServiceImpl) ListWinners(ctx context.Context) ([]*models.Winner, error) {
	return s.winnerRepo.FindAll(ctx)
}

// DeleteWinner removes a single winner record
func (s *DrawServiceImpl) DeleteWinner(ctx context.Context, id primitive.ObjectID) error {
	err := s.winnerRepo.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		return ErrWinnerNotFound
	}
	return err
}

// DeleteAllWinners clears the winner history
func (s *DrawServiceImpl) DeleteAllWinners(ctx context.Context) (int64, error) {
	deleted, err := s.winnerRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	zap.L().Info("winner history cleared", zap.Int64("deleted", deleted))
	return deleted, nil
}
