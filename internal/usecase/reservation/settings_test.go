package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

func TestUpdateSettings_PartialMerge(t *testing.T) {
	repo := sqliteRepo(t)
	uc := NewUpdateSettings(repo, &fakeAudit{})

	duration := 30
	hours := models.BusinessHours{
		"saturday": {Enabled: true, Open: "10:00", Close: "14:00"},
	}

	updated, err := uc.Execute(context.Background(), nil, UpdateSettingsInput{
		DefaultDuration: &duration,
		BusinessHours:   &hours,
	})

	require.NoError(t, err)
	assert.Equal(t, 30, updated.DefaultDuration)
	assert.Equal(t, 15, updated.BufferTime) // untouched
	assert.True(t, updated.BusinessHours["saturday"].Enabled)
	assert.True(t, updated.BusinessHours["monday"].Enabled) // merged, not replaced

	reloaded, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, reloaded.DefaultDuration)
	assert.True(t, reloaded.BusinessHours["saturday"].Enabled)
}

func TestUpdateSettings_RejectsBadHours(t *testing.T) {
	repo := sqliteRepo(t)
	uc := NewUpdateSettings(repo, &fakeAudit{})

	cases := []models.BusinessHours{
		{"monday": {Enabled: true, Open: "17:00", Close: "09:00"}},
		{"monday": {Enabled: true, Open: "9am", Close: "17:00"}},
		{"moonday": {Enabled: false}},
	}

	for _, hours := range cases {
		h := hours
		_, err := uc.Execute(context.Background(), nil, UpdateSettingsInput{BusinessHours: &h})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidBusinessHours))
	}
}

func TestUpdateSettings_RejectsBadNumbers(t *testing.T) {
	repo := sqliteRepo(t)
	uc := NewUpdateSettings(repo, &fakeAudit{})

	zero := 0
	negative := -5

	_, err := uc.Execute(context.Background(), nil, UpdateSettingsInput{DefaultDuration: &zero})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSettings))

	_, err = uc.Execute(context.Background(), nil, UpdateSettingsInput{BufferTime: &negative})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSettings))

	_, err = uc.Execute(context.Background(), nil, UpdateSettingsInput{MaxAdvanceDays: &zero})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSettings))
}

func TestGetSettings_ReturnsLazyDefaults(t *testing.T) {
	repo := sqliteRepo(t)
	uc := NewGetSettings(repo)

	settings, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.Equal(t, 60, settings.DefaultDuration)
}
