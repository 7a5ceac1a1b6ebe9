package reservation

import (
	"context"
	"time"

	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

type AvailableSlotsOutput struct {
	AvailableSlots []string          `json:"available_slots"`
	BusinessHours  *domain.DayWindow `json:"business_hours"`
}

// Execute resolves settings, generates candidate slots for the date's
// weekday and subtracts slots held by non-cancelled reservations. A
// disabled weekday short-circuits to an empty list with null hours,
// regardless of booking state.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
) (*AvailableSlotsOutput, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if len(settings.BusinessHours) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeConfigurationMissing)
	}

	day, ok := settings.BusinessHours[domain.WeekdayName(date)]
	if !ok || !day.Enabled {
		return &AvailableSlotsOutput{
			AvailableSlots: []string{},
			BusinessHours:  nil,
		}, nil
	}

	candidates := domain.SlotTimes(
		day.Open,
		day.Close,
		settings.DefaultDuration,
		settings.BufferTime,
	)

	existing, err := uc.repo.ListForDate(ctx, domain.DateKey(date))
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(existing))
	for _, r := range existing {
		if domain.Status(r.Status).BlocksSlot() {
			booked[r.TimeSlot] = true
		}
	}

	free := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if !booked[slot] {
			free = append(free, slot)
		}
	}

	return &AvailableSlotsOutput{
		AvailableSlots: free,
		BusinessHours: &domain.DayWindow{
			Open:  day.Open,
			Close: day.Close,
		},
	}, nil
}
