package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// CouponServiceImpl handles registration and cpf lookup
type CouponServiceImpl struct {
	couponRepo  repositories.CouponRepository
	scratchRepo repositories.ScratchCouponRepository
	sequence    SequenceService
}

// Compile-time check to ensure CouponServiceImpl implements CouponService
var _ CouponService = (*CouponServiceImpl)(nil)

// NewCouponService creates a new CouponServiceImpl
func NewCouponService(
	couponRepo repositories.CouponRepository,
	scratchRepo repositories.ScratchCouponRepository,
	sequence SequenceService,
) *CouponServiceImpl {
	return &CouponServiceImpl{
		couponRepo:  couponRepo,
		scratchRepo: scratchRepo,
		sequence:    sequence,
	}
}

// Register validates the form, rejects duplicates and persists a new
// coupon. The duplicate pre-check runs before the sequence is touched so
// a rejected submission never consumes a code. The unique index on
// (cpf, numeroCompra) closes the remaining check-then-insert race.
func (s *CouponServiceImpl) Register(ctx context.Context, req *models.RegisterCouponRequest) (*models.Coupon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.couponRepo.FindByCPFAndPurchaseRef(ctx, req.CPF, req.PurchaseRef)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check for existing coupon: %w", err)
	}
	if existing != nil {
		zap.L().Warn("duplicate registration rejected",
			zap.String("cpf", req.CPF),
			zap.String("purchaseNumber", req.PurchaseRef))
		return nil, ErrDuplicateRegistration
	}

	code, err := s.sequence.NextCode(ctx)
	if err != nil {
		return nil, err
	}

	coupon := &models.Coupon{
		FullName:      req.FullName,
		CPF:           req.CPF,
		PurchaseRef:   req.PurchaseRef,
		CouponNumber:  code,
		PurchaseValue: req.PurchaseValue,
		PurchaseDate:  req.PurchaseDate,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCoupon) {
			// Lost the race against an identical concurrent submission.
			// The allocated code is abandoned, leaving a gap in the sequence.
			return nil, ErrDuplicateRegistration
		}
		zap.L().Error("failed to persist coupon", zap.Error(err), zap.String("couponNumber", code))
		return nil, fmt.Errorf("failed to save coupon: %w", err)
	}

	zap.L().Info("coupon registered",
		zap.String("couponNumber", coupon.CouponNumber),
		zap.String("cpf", coupon.CPF))
	return coupon, nil
}

// FindByCPF fetches everything a cpf holds. Coupons are grouped by
// purchase number with codes ascending inside each group; groups come
// newest first. Scratch coupons come available first, then by issuance
// time descending.
func (s *CouponServiceImpl) FindByCPF(ctx context.Context, cpf string) (*models.LookupResult, error) {
	coupons, err := s.couponRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupons: %w", err)
	}

	scratches, err := s.scratchRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scratch coupons: %w", err)
	}

	return &models.LookupResult{
		Coupons:        groupCoupons(coupons),
		ScratchCoupons: sortScratches(scratches),
	}, nil
}

// ListAll returns every registered coupon for the admin listing
func (s *CouponServiceImpl) ListAll(ctx context.Context) ([]*models.Coupon, error) {
	return s.couponRepo.FindAll(ctx)
}

// Count returns the number of registered coupons
func (s *CouponServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.couponRepo.Count(ctx)
}

// groupCoupons buckets coupons by purchase number. The repository hands
// coupons newest first, so group order follows first appearance. Codes
// are fixed-width zero-padded, so the lexicographic sort inside a group
// equals numeric order.
func groupCoupons(coupons []*models.Coupon) []models.CouponGroup {
	groups := []models.CouponGroup{}
	index := map[string]int{}

	for _, c := range coupons {
		i, ok := index[c.PurchaseRef]
		if !ok {
			i = len(groups)
			index[c.PurchaseRef] = i
			groups = append(groups, models.CouponGroup{PurchaseRef: c.PurchaseRef})
		}
		groups[i].Codes = append(groups[i].Codes, c.CouponNumber)
	}

	for i := range groups {
		sort.Strings(groups[i].Codes)
	}
	return groups
}

// sortScratches orders scratch coupons available first, then by
// issuance time descending within each status.
func sortScratches(scratches []*models.ScratchCoupon) []*models.ScratchCoupon {
	if scratches == nil {
		return []*models.ScratchCoupon{}
	}
	sort.SliceStable(scratches, func(i, j int) bool {
		a, b := scratches[i], scratches[j]
		if a.Status != b.Status {
			return a.Status == models.ScratchStatusAvailable
		}
		return a.IssuedAt.After(b.IssuedAt)
	})
	return scratches
}
