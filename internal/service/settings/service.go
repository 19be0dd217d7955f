package settings

import (
	"context"
	"fmt"

	"github.com/staffline/backoffice-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	repo settings.SettingsRepository
}

func NewService(repo settings.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{repo: repo}
}

// GetCompanySettings implements settings.Service. The defaults row is created
// on first read so every other module always sees a schedule.
func (s *SettingsServiceImpl) GetCompanySettings(ctx context.Context) (settings.CompanySettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return settings.CompanySettings{}, fmt.Errorf("failed to get company settings: %w", err)
	}
	if current != nil {
		return *current, nil
	}

	created, err := s.repo.Create(ctx, settings.DefaultCompanySettings())
	if err != nil {
		return settings.CompanySettings{}, fmt.Errorf("failed to create default settings: %w", err)
	}
	return created, nil
}

// UpdateCompanySettings implements settings.Service.
func (s *SettingsServiceImpl) UpdateCompanySettings(ctx context.Context, req settings.UpdateCompanySettingsRequest) (settings.CompanySettings, error) {
	if err := req.Validate(); err != nil {
		return settings.CompanySettings{}, err
	}

	current, err := s.GetCompanySettings(ctx)
	if err != nil {
		return settings.CompanySettings{}, err
	}

	if req.CompanyName != nil {
		current.CompanyName = *req.CompanyName
	}
	if req.WorkDays != nil {
		current.WorkDays = *req.WorkDays
	}
	if req.WorkStartTime != nil {
		current.WorkStartTime = *req.WorkStartTime
	}
	if req.WorkEndTime != nil {
		current.WorkEndTime = *req.WorkEndTime
	}
	if req.EnableOvertime != nil {
		current.EnableOvertime = *req.EnableOvertime
	}

	// Zero-padded HH:MM compares correctly as text.
	if current.WorkStartTime >= current.WorkEndTime {
		return settings.CompanySettings{}, settings.ErrInvalidWorkHours
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return settings.CompanySettings{}, fmt.Errorf("failed to update company settings: %w", err)
	}
	return updated, nil
}
