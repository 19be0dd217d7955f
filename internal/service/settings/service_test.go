package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/backoffice-go/internal/domain/settings"
)

type fakeSettingsRepo struct {
	row     *settings.CompanySettings
	creates int
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*settings.CompanySettings, error) {
	if f.row == nil {
		return nil, nil
	}
	copied := *f.row
	return &copied, nil
}

func (f *fakeSettingsRepo) Create(ctx context.Context, s settings.CompanySettings) (settings.CompanySettings, error) {
	f.creates++
	s.ID = "settings-1"
	copied := s
	f.row = &copied
	return s, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s settings.CompanySettings) (settings.CompanySettings, error) {
	copied := s
	f.row = &copied
	return s, nil
}

func TestGetCompanySettings_CreatesDefaultsOnFirstRead(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo)

	got, err := svc.GetCompanySettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "My Company", got.CompanyName)
	assert.Equal(t, "09:00", got.WorkStartTime)
	assert.Equal(t, "17:00", got.WorkEndTime)
	assert.False(t, got.EnableOvertime)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, got.WorkDays)

	// A second read reuses the stored row.
	_, err = svc.GetCompanySettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
}

func TestUpdateCompanySettings_PatchesOnlyGivenFields(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo)

	name := "Staffline Retail"
	overtime := true
	updated, err := svc.UpdateCompanySettings(context.Background(), settings.UpdateCompanySettingsRequest{
		CompanyName:    &name,
		EnableOvertime: &overtime,
	})
	require.NoError(t, err)

	assert.Equal(t, "Staffline Retail", updated.CompanyName)
	assert.True(t, updated.EnableOvertime)
	assert.Equal(t, "09:00", updated.WorkStartTime)
	assert.Equal(t, "17:00", updated.WorkEndTime)
}

func TestUpdateCompanySettings_RejectsInvertedHours(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo)

	start := "18:00"
	_, err := svc.UpdateCompanySettings(context.Background(), settings.UpdateCompanySettingsRequest{
		WorkStartTime: &start,
	})
	assert.ErrorIs(t, err, settings.ErrInvalidWorkHours)

	// Equal start and end is rejected too.
	start = "17:00"
	_, err = svc.UpdateCompanySettings(context.Background(), settings.UpdateCompanySettingsRequest{
		WorkStartTime: &start,
	})
	assert.ErrorIs(t, err, settings.ErrInvalidWorkHours)
}

func TestUpdateCompanySettings_RejectsMalformedInput(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo)

	badTime := "9am"
	_, err := svc.UpdateCompanySettings(context.Background(), settings.UpdateCompanySettingsRequest{
		WorkStartTime: &badTime,
	})
	assert.Error(t, err)

	badDays := []string{"Monday", "Funday"}
	_, err = svc.UpdateCompanySettings(context.Background(), settings.UpdateCompanySettingsRequest{
		WorkDays: &badDays,
	})
	assert.Error(t, err)
}

func TestCompanySettings_Schedule(t *testing.T) {
	cfg := settings.DefaultCompanySettings()

	sh, sm := cfg.StartClock()
	eh, em := cfg.EndClock()
	assert.Equal(t, 9, sh)
	assert.Equal(t, 0, sm)
	assert.Equal(t, 17, eh)
	assert.Equal(t, 0, em)

	assert.Equal(t, "8h0m0s", cfg.ExpectedDailyDuration().String())
}
