package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

var (
	// 2026-09-07 is a Monday, 2026-09-06 a Sunday.
	testMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
)

func TestGetAvailableSlots_NoBookings(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSettings", mock.Anything).Return(settingsFixture(), nil)
	repo.On("ListForDate", mock.Anything, "2026-09-07").Return([]models.Reservation{}, nil)

	uc := NewGetAvailableSlots(repo)
	out, err := uc.Execute(context.Background(), testMonday)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:15", "11:30"}, out.AvailableSlots)
	require.NotNil(t, out.BusinessHours)
	assert.Equal(t, domain.DayWindow{Open: "09:00", Close: "12:00"}, *out.BusinessHours)
}

func TestGetAvailableSlots_DisabledDay(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSettings", mock.Anything).Return(settingsFixture(), nil)

	uc := NewGetAvailableSlots(repo)
	out, err := uc.Execute(context.Background(), testSunday)

	require.NoError(t, err)
	assert.Empty(t, out.AvailableSlots)
	assert.Nil(t, out.BusinessHours)

	// Closed days never touch the ledger.
	repo.AssertNotCalled(t, "ListForDate", mock.Anything, mock.Anything)
}

func TestGetAvailableSlots_StoreErrorPropagates(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSettings", mock.Anything).Return(nil, errors.New("connection refused"))

	uc := NewGetAvailableSlots(repo)
	out, err := uc.Execute(context.Background(), testMonday)

	require.Error(t, err)
	assert.Nil(t, out)

	// Outages are not a client problem and must not be dressed up as one.
	_, isBusiness := httperr.BusinessCode(err)
	assert.False(t, isBusiness)
}

func TestGetAvailableSlots_EmptyHoursIsConfigurationError(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSettings", mock.Anything).Return(&models.ReservationSettings{
		ID:              models.SettingsID,
		DefaultDuration: 60,
		BufferTime:      15,
	}, nil)

	uc := NewGetAvailableSlots(repo)
	_, err := uc.Execute(context.Background(), testMonday)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeConfigurationMissing))
}

func TestGetAvailableSlots_ExcludesBookedSlots(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSettings", mock.Anything).Return(settingsFixture(), nil)
	repo.On("ListForDate", mock.Anything, "2026-09-07").Return([]models.Reservation{
		{TimeSlot: "10:15", Status: string(domain.StatusPending)},
	}, nil)

	uc := NewGetAvailableSlots(repo)
	out, err := uc.Execute(context.Background(), testMonday)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:30"}, out.AvailableSlots)
}

func TestGetAvailableSlots_CancelledDoesNotBlock(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSettings", mock.Anything).Return(settingsFixture(), nil)
	repo.On("ListForDate", mock.Anything, "2026-09-07").Return([]models.Reservation{
		{TimeSlot: "10:15", Status: string(domain.StatusCancelled)},
		{TimeSlot: "11:30", Status: string(domain.StatusConfirmed)},
	}, nil)

	uc := NewGetAvailableSlots(repo)
	out, err := uc.Execute(context.Background(), testMonday)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:15"}, out.AvailableSlots)
}
