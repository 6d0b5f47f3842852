package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermax-promo/cupom-backend/internal/models"
)

func TestSettings_GetCreatesDefaults(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.CampaignSettingsID, settings.ID)
	assert.Equal(t, float64(50), settings.ValuePerCoupon)
	assert.Nil(t, settings.CampaignStartDate)
	assert.Nil(t, settings.CampaignEndDate)
}

func TestSettings_Update(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)

	updated, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		ValuePerCoupon:    75,
		CampaignStartDate: start.Format(time.RFC3339),
		CampaignEndDate:   end.Format(time.RFC3339),
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, float64(75), updated.ValuePerCoupon)
	require.NotNil(t, updated.CampaignStartDate)
	require.NotNil(t, updated.CampaignEndDate)
	assert.True(t, updated.CampaignStartDate.Equal(start))
	assert.True(t, updated.CampaignEndDate.Equal(end))
	assert.Equal(t, "admin", updated.UpdatedBy)
}

func TestSettings_UpdatePreservesWinnerMirror(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	require.NoError(t, repo.SetWinner(context.Background(), "SM-00007"))

	updated, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{ValuePerCoupon: 60}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "SM-00007", updated.Winner)
}

func TestSettings_UpdateRejectsBadInput(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{ValuePerCoupon: 0}, "admin")
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), &models.UpdateSettingsRequest{
		ValuePerCoupon:    50,
		CampaignStartDate: "24/12/2026",
	}, "admin")
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), &models.UpdateSettingsRequest{
		ValuePerCoupon:    50,
		CampaignStartDate: "2026-12-24T00:00:00Z",
		CampaignEndDate:   "2026-09-01T00:00:00Z",
	}, "admin")
	assert.Error(t, err)
}
