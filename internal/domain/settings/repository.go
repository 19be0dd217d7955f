package settings

import (
	"context"
)

// SettingsRepository persists the single company settings row.
type SettingsRepository interface {
	// Get returns the settings row, or nil when none has been created yet.
	Get(ctx context.Context) (*CompanySettings, error)

	Create(ctx context.Context, s CompanySettings) (CompanySettings, error)

	Update(ctx context.Context, s CompanySettings) (CompanySettings, error)
}

// Provider is the read-only schedule view consumed by the attendance engine and
// the sweeper. Each operation fetches a fresh snapshot; the schedule is never
// memoized so an admin change takes effect immediately.
type Provider interface {
	GetCompanySettings(ctx context.Context) (CompanySettings, error)
}

type Service interface {
	Provider
	UpdateCompanySettings(ctx context.Context, req UpdateCompanySettingsRequest) (CompanySettings, error)
}
