package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sitekit-labs/sitekit-api/internal/audit"
	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

type CreateReservationInput struct {
	Name  string
	Email string
	Phone string

	Service string

	Date     string // YYYY-MM-DD
	TimeSlot string // HH:MM
	Notes    string

	UserID *uint
}

type CreateReservation struct {
	repo   domain.Repository
	audit  AuditSink
	notify Notifier
	loc    *time.Location
	now    func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	auditSink AuditSink,
	notifier Notifier,
	loc *time.Location,
) *CreateReservation {
	return &CreateReservation{
		repo:   repo,
		audit:  auditSink,
		notify: notifier,
		loc:    loc,
		now:    time.Now,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if !domain.ValidHoursString(in.TimeSlot) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeSlot)
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if len(settings.BusinessHours) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeConfigurationMissing)
	}

	day, ok := settings.BusinessHours[domain.WeekdayName(date)]
	if !ok || !day.Enabled {
		return nil, httperr.ErrBusiness(httperr.CodeDayClosed)
	}

	now := uc.now().In(uc.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	if date.Before(today) {
		return nil, httperr.ErrBusiness(httperr.CodeDateInPast)
	}
	if settings.MaxAdvanceDays > 0 && date.After(today.AddDate(0, 0, settings.MaxAdvanceDays)) {
		return nil, httperr.ErrBusiness(httperr.CodeTooFarInAdvance)
	}

	if in.Service != "" && len(settings.AllowedServices) > 0 {
		if !containsService(settings.AllowedServices, in.Service) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotOffered)
		}
	}

	// Pre-check for a friendly error on the common path; the partial
	// unique index is the actual guarantee under concurrency.
	dateKey := domain.DateKey(date)
	existing, err := uc.repo.ListForDate(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.TimeSlot == in.TimeSlot && domain.Status(r.Status).BlocksSlot() {
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	reservation := &models.Reservation{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Service:  in.Service,
		Date:     date,
		DateKey:  dateKey,
		TimeSlot: in.TimeSlot,
		Duration: settings.DefaultDuration,
		Status:   string(domain.InitialStatus()),
		Notes:    in.Notes,
		UserID:   in.UserID,
	}

	if err := uc.repo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: reservation.ID,
		Metadata: map[string]string{
			"date":      dateKey,
			"time_slot": reservation.TimeSlot,
		},
	})

	uc.notify.ReservationCreated(reservation)

	return reservation, nil
}

func containsService(services models.StringList, name string) bool {
	for _, s := range services {
		if s == name {
			return true
		}
	}
	return false
}
