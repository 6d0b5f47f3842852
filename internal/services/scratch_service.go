package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// ScratchCouponServiceImpl handles the scratch coupon lifecycle
type ScratchCouponServiceImpl struct {
	scratchRepo repositories.ScratchCouponRepository
}

// Compile-time check to ensure ScratchCouponServiceImpl implements ScratchCouponService
var _ ScratchCouponService = (*ScratchCouponServiceImpl)(nil)

// NewScratchCouponService creates a new ScratchCouponServiceImpl
func NewScratchCouponService(scratchRepo repositories.ScratchCouponRepository) *ScratchCouponServiceImpl {
	return &ScratchCouponServiceImpl{scratchRepo: scratchRepo}
}

// Issue creates a new scratch coupon; the repository forces the
// available status and issuance timestamp.
func (s *ScratchCouponServiceImpl) Issue(ctx context.Context, req *models.IssueScratchCouponRequest) (*models.ScratchCoupon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sc := &models.ScratchCoupon{
		CPF:              req.CPF,
		FullName:         req.FullName,
		Prize:            req.Prize,
		PurchaseValue:    req.PurchaseValue,
		PurchaseDate:     req.PurchaseDate,
		PurchaseLocation: req.PurchaseLocation,
		PurchasePhone:    req.PurchasePhone,
		CouponNumber:     req.CouponNumber,
	}
	if err := s.scratchRepo.Create(ctx, sc); err != nil {
		zap.L().Error("failed to issue scratch coupon", zap.Error(err), zap.String("cpf", req.CPF))
		return nil, fmt.Errorf("failed to issue scratch coupon: %w", err)
	}

	zap.L().Info("scratch coupon issued", zap.String("id", sc.ID.Hex()), zap.String("cpf", sc.CPF))
	return sc, nil
}

// Reveal transitions an available scratch coupon to raspado exactly
// once. A repeat reveal is rejected with ErrAlreadyRevealed and never
// touches the original reveal timestamp.
func (s *ScratchCouponServiceImpl) Reveal(ctx context.Context, id primitive.ObjectID) (*models.ScratchCoupon, error) {
	flipped, err := s.scratchRepo.MarkScratched(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal scratch coupon: %w", err)
	}

	// An admin delete landing between the update and this read turns a
	// committed reveal into ErrScratchNotFound. The coupon is gone
	// either way, so the 404 stands.
	sc, err := s.scratchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrScratchNotFound
		}
		return nil, fmt.Errorf("failed to load scratch coupon: %w", err)
	}

	if !flipped {
		// The conditional update matched nothing and the record exists,
		// so it was revealed before this call.
		return nil, ErrAlreadyRevealed
	}

	zap.L().Info("scratch coupon revealed", zap.String("id", id.Hex()), zap.String("premio", sc.Prize))
	return sc, nil
}

// Delete removes a scratch coupon
func (s *ScratchCouponServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.scratchRepo.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		return ErrScratchNotFound
	}
	return err
}

// ListAll returns all scratch coupons, newest issuance first
func (s *ScratchCouponServiceImpl) ListAll(ctx context.Context) ([]*models.ScratchCoupon, error) {
	return s.scratchRepo.FindAll(ctx)
}

// DuplicateTemplate copies the reusable fields of an existing scratch
// coupon into a prefilled issuance form. Identity, status and
// timestamps are deliberately left out.
func (s *ScratchCouponServiceImpl) DuplicateTemplate(ctx context.Context, id primitive.ObjectID) (*models.ScratchTemplate, error) {
	sc, err := s.scratchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrScratchNotFound
		}
		return nil, fmt.Errorf("failed to load scratch coupon: %w", err)
	}

	return &models.ScratchTemplate{
		CPF:              sc.CPF,
		FullName:         sc.FullName,
		Prize:            sc.Prize,
		PurchaseValue:    sc.PurchaseValue,
		PurchaseDate:     sc.PurchaseDate,
		PurchaseLocation: sc.PurchaseLocation,
		PurchasePhone:    sc.PurchasePhone,
	}, nil
}
