package reservation

import (
	"context"

	"github.com/sitekit-labs/sitekit-api/internal/audit"
	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

type GetSettings struct {
	repo domain.Repository
}

func NewGetSettings(repo domain.Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

func (uc *GetSettings) Execute(ctx context.Context) (*models.ReservationSettings, error) {
	return uc.repo.GetSettings(ctx)
}

// UpdateSettingsInput is a partial replace: nil fields keep their current
// value. Creating-if-absent happens implicitly through the repository's
// lazy defaulting.
type UpdateSettingsInput struct {
	BusinessHours   *models.BusinessHours `json:"business_hours"`
	DefaultDuration *int                  `json:"default_duration"`
	BufferTime      *int                  `json:"buffer_time"`
	MaxAdvanceDays  *int                  `json:"max_advance_days"`
	AllowedServices *[]string             `json:"allowed_services"`
}

type UpdateSettings struct {
	repo  domain.Repository
	audit AuditSink
}

func NewUpdateSettings(repo domain.Repository, auditSink AuditSink) *UpdateSettings {
	return &UpdateSettings{
		repo:  repo,
		audit: auditSink,
	}
}

func (uc *UpdateSettings) Execute(
	ctx context.Context,
	actorID *uint,
	in UpdateSettingsInput,
) (*models.ReservationSettings, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if in.BusinessHours != nil {
		merged := settings.BusinessHours
		if merged == nil {
			merged = domain.DefaultBusinessHours()
		}
		for name, day := range *in.BusinessHours {
			if !domain.IsWeekdayName(name) {
				return nil, httperr.ErrBusiness(httperr.CodeInvalidBusinessHours)
			}
			if day.Enabled {
				if !domain.ValidHoursString(day.Open) || !domain.ValidHoursString(day.Close) {
					return nil, httperr.ErrBusiness(httperr.CodeInvalidBusinessHours)
				}
				if day.Open >= day.Close {
					return nil, httperr.ErrBusiness(httperr.CodeInvalidBusinessHours)
				}
			}
			merged[name] = day
		}
		settings.BusinessHours = merged
	}

	if in.DefaultDuration != nil {
		if *in.DefaultDuration <= 0 {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidSettings)
		}
		settings.DefaultDuration = *in.DefaultDuration
	}

	if in.BufferTime != nil {
		if *in.BufferTime < 0 {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidSettings)
		}
		settings.BufferTime = *in.BufferTime
	}

	if in.MaxAdvanceDays != nil {
		if *in.MaxAdvanceDays <= 0 {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidSettings)
		}
		settings.MaxAdvanceDays = *in.MaxAdvanceDays
	}

	if in.AllowedServices != nil {
		settings.AllowedServices = models.StringList(*in.AllowedServices)
	}

	if err := uc.repo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: actorID,
		Action: "settings_updated",
		Entity: "reservation_settings",
	})

	return settings, nil
}
