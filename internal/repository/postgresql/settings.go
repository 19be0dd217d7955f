package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffline/backoffice-go/internal/domain/settings"
	"github.com/staffline/backoffice-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

const settingsColumns = `id, company_name, work_days, work_start_time, work_end_time, enable_overtime, created_at, updated_at`

func scanSettings(row pgx.Row) (settings.CompanySettings, error) {
	var s settings.CompanySettings
	err := row.Scan(
		&s.ID, &s.CompanyName, &s.WorkDays, &s.WorkStartTime,
		&s.WorkEndTime, &s.EnableOvertime, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Get implements settings.SettingsRepository. There is at most one row.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (*settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + settingsColumns + `
		FROM company_settings
		LIMIT 1
	`

	s, err := scanSettings(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Create(ctx context.Context, s settings.CompanySettings) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO company_settings (
			id, company_name, work_days, work_start_time, work_end_time, enable_overtime, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	s.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		s.ID, s.CompanyName, s.WorkDays, s.WorkStartTime, s.WorkEndTime, s.EnableOvertime,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return settings.CompanySettings{}, err
	}

	return s, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Update(ctx context.Context, s settings.CompanySettings) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE company_settings
		SET company_name = $2, work_days = $3, work_start_time = $4,
		    work_end_time = $5, enable_overtime = $6, updated_at = $7
		WHERE id = $1
		RETURNING ` + settingsColumns

	updated, err := scanSettings(q.QueryRow(ctx, query,
		s.ID, s.CompanyName, s.WorkDays, s.WorkStartTime, s.WorkEndTime, s.EnableOvertime, time.Now(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.CompanySettings{}, settings.ErrSettingsNotFound
		}
		return settings.CompanySettings{}, err
	}
	return updated, nil
}
