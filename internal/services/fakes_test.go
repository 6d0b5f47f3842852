package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// fakeCounterRepo emulates the store's atomic single-document increment.
type fakeCounterRepo struct {
	mu   sync.Mutex
	last int64
	fail error
}

func (f *fakeCounterRepo) NextNumber(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return 0, f.fail
	}
	f.last++
	return f.last, nil
}

// Current is an assertion helper, not part of the repository contract.
func (f *fakeCounterRepo) Current(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, nil
}

// fakeCouponRepo keeps coupons in memory and enforces the unique
// (cpf, numeroCompra) key the Mongo index provides.
type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons []*models.Coupon
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *models.Coupon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.coupons {
		if c.CPF == coupon.CPF && c.PurchaseRef == coupon.PurchaseRef {
			return repositories.ErrDuplicateCoupon
		}
	}
	coupon.ID = primitive.NewObjectID()
	if coupon.RegisteredAt.IsZero() {
		coupon.RegisteredAt = time.Now()
	}
	stored := *coupon
	f.coupons = append(f.coupons, &stored)
	return nil
}

func (f *fakeCouponRepo) FindByCPF(ctx context.Context, cpf string) ([]*models.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Coupon{}
	for _, c := range f.coupons {
		if c.CPF == cpf {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RegisteredAt.After(out[j].RegisteredAt)
	})
	return out, nil
}

func (f *fakeCouponRepo) FindByCPFAndPurchaseRef(ctx context.Context, cpf, purchaseRef string) (*models.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.coupons {
		if c.CPF == cpf && c.PurchaseRef == purchaseRef {
			copied := *c
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCouponRepo) FindAll(ctx context.Context) ([]*models.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Coupon{}
	for _, c := range f.coupons {
		copied := *c
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CouponNumber < out[j].CouponNumber
	})
	return out, nil
}

func (f *fakeCouponRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.coupons)), nil
}

// fakeWinnerRepo keeps winner history in memory.
type fakeWinnerRepo struct {
	mu      sync.Mutex
	winners []*models.Winner
	fail    error
}

func (f *fakeWinnerRepo) Create(ctx context.Context, winner *models.Winner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	winner.ID = primitive.NewObjectID()
	stored := *winner
	f.winners = append(f.winners, &stored)
	return nil
}

func (f *fakeWinnerRepo) FindAll(ctx context.Context) ([]*models.Winner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Winner{}
	for _, w := range f.winners {
		copied := *w
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DrawDate.After(out[j].DrawDate)
	})
	return out, nil
}

func (f *fakeWinnerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.winners {
		if w.ID == id {
			f.winners = append(f.winners[:i], f.winners[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeWinnerRepo) DeleteAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.winners))
	f.winners = nil
	return n, nil
}

// fakeScratchRepo keeps scratch coupons in memory with the same
// conditional status flip the Mongo implementation performs.
type fakeScratchRepo struct {
	mu        sync.Mutex
	scratches map[primitive.ObjectID]*models.ScratchCoupon
}

func newFakeScratchRepo() *fakeScratchRepo {
	return &fakeScratchRepo{scratches: map[primitive.ObjectID]*models.ScratchCoupon{}}
}

func (f *fakeScratchRepo) Create(ctx context.Context, sc *models.ScratchCoupon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sc.ID = primitive.NewObjectID()
	sc.Status = models.ScratchStatusAvailable
	if sc.IssuedAt.IsZero() {
		sc.IssuedAt = time.Now()
	}
	sc.ScratchedAt = nil
	stored := *sc
	f.scratches[sc.ID] = &stored
	return nil
}

func (f *fakeScratchRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ScratchCoupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sc, ok := f.scratches[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *sc
	return &copied, nil
}

func (f *fakeScratchRepo) FindByCPF(ctx context.Context, cpf string) ([]*models.ScratchCoupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.ScratchCoupon{}
	for _, sc := range f.scratches {
		if sc.CPF == cpf {
			copied := *sc
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeScratchRepo) FindAll(ctx context.Context) ([]*models.ScratchCoupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.ScratchCoupon{}
	for _, sc := range f.scratches {
		copied := *sc
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IssuedAt.After(out[j].IssuedAt)
	})
	return out, nil
}

func (f *fakeScratchRepo) MarkScratched(ctx context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sc, ok := f.scratches[id]
	if !ok || sc.Status != models.ScratchStatusAvailable {
		return false, nil
	}
	now := time.Now()
	sc.Status = models.ScratchStatusScratched
	sc.ScratchedAt = &now
	return true, nil
}

func (f *fakeScratchRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scratches[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.scratches, id)
	return nil
}

// fakeSettingsRepo keeps the singleton settings document in memory.
type fakeSettingsRepo struct {
	mu            sync.Mutex
	settings      *models.CampaignSettings
	failSetWinner error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*models.CampaignSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		f.settings = &models.CampaignSettings{
			ID:             models.CampaignSettingsID,
			ValuePerCoupon: 50,
			UpdatedAt:      time.Now(),
		}
	}
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, settings *models.CampaignSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	settings.ID = models.CampaignSettingsID
	settings.UpdatedAt = time.Now()
	copied := *settings
	f.settings = &copied
	return nil
}

func (f *fakeSettingsRepo) SetWinner(ctx context.Context, couponNumber string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSetWinner != nil {
		return f.failSetWinner
	}
	if f.settings == nil {
		f.settings = &models.CampaignSettings{ID: models.CampaignSettingsID}
	}
	f.settings.Winner = couponNumber
	f.settings.UpdatedAt = time.Now()
	return nil
}

var errStoreDown = errors.New("store unavailable")
