package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermax-promo/cupom-backend/internal/models"
)

func newDrawFixture(rng *rand.Rand) (*DrawServiceImpl, *fakeCouponRepo, *fakeWinnerRepo, *fakeSettingsRepo) {
	couponRepo := &fakeCouponRepo{}
	winnerRepo := &fakeWinnerRepo{}
	settingsRepo := &fakeSettingsRepo{}
	svc := NewDrawService(couponRepo, winnerRepo, settingsRepo, rng)
	return svc, couponRepo, winnerRepo, settingsRepo
}

func seedCoupon(t *testing.T, repo *fakeCouponRepo, cpf, ref, code string) {
	t.Helper()
	err := repo.Create(context.Background(), &models.Coupon{
		FullName:     "Cliente " + code,
		CPF:          cpf,
		PurchaseRef:  ref,
		CouponNumber: code,
	})
	require.NoError(t, err)
}

func TestDrawWinner_EmptyPool(t *testing.T) {
	svc, _, winnerRepo, _ := newDrawFixture(rand.New(rand.NewSource(1)))

	_, err := svc.DrawWinner(context.Background())
	require.ErrorIs(t, err, ErrEmptyPool)

	winners, err := winnerRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, winners, "a failed draw must not record a winner")
}

func TestDrawWinner_SnapshotsCoupon(t *testing.T) {
	svc, couponRepo, winnerRepo, settingsRepo := newDrawFixture(rand.New(rand.NewSource(7)))
	seedCoupon(t, couponRepo, "12345678901", "P1", "SM-00001")

	winner, err := svc.DrawWinner(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "SM-00001", winner.CouponNumber)
	assert.Equal(t, "12345678901", winner.CPF)
	assert.Equal(t, "P1", winner.PurchaseRef)
	assert.False(t, winner.DrawDate.IsZero())

	winners, err := winnerRepo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, winners, 1)

	settings, err := settingsRepo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SM-00001", settings.Winner)

	// The pool is untouched: drawing again still works and may repeat.
	count, err := couponRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	again, err := svc.DrawWinner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SM-00001", again.CouponNumber)
}

func TestDrawWinner_SettingsMirrorFailureDoesNotFailDraw(t *testing.T) {
	svc, couponRepo, winnerRepo, settingsRepo := newDrawFixture(rand.New(rand.NewSource(3)))
	settingsRepo.failSetWinner = errStoreDown
	seedCoupon(t, couponRepo, "12345678901", "P1", "SM-00001")

	winner, err := svc.DrawWinner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SM-00001", winner.CouponNumber)

	winners, err := winnerRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, winners, 1)
}

func TestDrawWinner_UniformSelection(t *testing.T) {
	const trials = 3000

	svc, couponRepo, winnerRepo, _ := newDrawFixture(rand.New(rand.NewSource(42)))
	seedCoupon(t, couponRepo, "11111111111", "P1", "SM-00001")
	seedCoupon(t, couponRepo, "22222222222", "P1", "SM-00002")
	seedCoupon(t, couponRepo, "33333333333", "P1", "SM-00003")

	freq := map[string]int{}
	for i := 0; i < trials; i++ {
		winner, err := svc.DrawWinner(context.Background())
		require.NoError(t, err)
		freq[winner.CouponNumber]++
	}

	require.Len(t, freq, 3, "every coupon should win eventually")
	expected := trials / 3
	for code, n := range freq {
		// Loose 15% band; a biased pick fails this decisively.
		assert.InDelta(t, expected, n, float64(expected)*0.15, "coupon %s drawn %d times", code, n)
	}

	winners, err := winnerRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, winners, trials)
}

func TestDeleteWinner(t *testing.T) {
	svc, couponRepo, winnerRepo, _ := newDrawFixture(rand.New(rand.NewSource(9)))
	seedCoupon(t, couponRepo, "12345678901", "P1", "SM-00001")

	winner, err := svc.DrawWinner(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWinner(context.Background(), winner.ID))
	assert.ErrorIs(t, svc.DeleteWinner(context.Background(), winner.ID), ErrWinnerNotFound)

	winners, err := winnerRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, winners)
}

func TestDeleteAllWinners(t *testing.T) {
	svc, couponRepo, _, _ := newDrawFixture(rand.New(rand.NewSource(11)))
	seedCoupon(t, couponRepo, "12345678901", "P1", "SM-00001")

	for i := 0; i < 3; i++ {
		_, err := svc.DrawWinner(context.Background())
		require.NoError(t, err)
	}

	deleted, err := svc.DeleteAllWinners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	winners, err := svc.ListWinners(context.Background())
	require.NoError(t, err)
	assert.Empty(t, winners)
}
