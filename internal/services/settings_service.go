package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// SettingsServiceImpl manages the singleton campaign settings
type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
}

// Compile-time check to ensure SettingsServiceImpl implements SettingsService
var _ SettingsService = (*SettingsServiceImpl)(nil)

// NewSettingsService creates a new SettingsServiceImpl
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get retrieves the campaign settings, creating defaults on first read
func (s *SettingsServiceImpl) Get(ctx context.Context) (*models.CampaignSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// Update applies the admin settings form on top of the stored document.
// The winner mirror field is preserved; only the draw service writes it.
func (s *SettingsServiceImpl) Update(ctx context.Context, req *models.UpdateSettingsRequest, updatedBy string) (*models.CampaignSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := parseOptionalDate(req.CampaignStartDate)
	if err != nil {
		return nil, validation.Errors{"campaignStartDate": errors.New("must be an RFC 3339 timestamp")}
	}
	end, err := parseOptionalDate(req.CampaignEndDate)
	if err != nil {
		return nil, validation.Errors{"campaignEndDate": errors.New("must be an RFC 3339 timestamp")}
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, validation.Errors{"campaignEndDate": errors.New("must not precede campaignStartDate")}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings.ValuePerCoupon = req.ValuePerCoupon
	settings.CampaignStartDate = start
	settings.CampaignEndDate = end
	settings.UpdatedBy = updatedBy

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
