package reservation

import (
	"context"
	"time"

	"github.com/sitekit-labs/sitekit-api/internal/audit"
	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

// UpdateReservationInput carries the allow-listed mutable fields. Anything
// else in the request body (id, timestamps, user_id, ...) is dropped by
// construction: it has no field to land in.
type UpdateReservationInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Service  *string `json:"service"`
	Date     *string `json:"date"`
	TimeSlot *string `json:"time_slot"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

type UpdateReservation struct {
	repo   domain.Repository
	audit  AuditSink
	notify Notifier
	loc    *time.Location
}

func NewUpdateReservation(
	repo domain.Repository,
	auditSink AuditSink,
	notifier Notifier,
	loc *time.Location,
) *UpdateReservation {
	return &UpdateReservation{
		repo:   repo,
		audit:  auditSink,
		notify: notifier,
		loc:    loc,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	actorID *uint,
	id string,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	reservation, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	prevStatus := reservation.Status

	if in.Name != nil {
		reservation.Name = *in.Name
	}
	if in.Email != nil {
		reservation.Email = *in.Email
	}
	if in.Phone != nil {
		reservation.Phone = *in.Phone
	}
	if in.Service != nil {
		reservation.Service = *in.Service
	}
	if in.Notes != nil {
		reservation.Notes = *in.Notes
	}

	if in.Status != nil {
		if !domain.Status(*in.Status).Valid() {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
		}
		reservation.Status = *in.Status
	}

	slotMoved := false

	if in.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *in.Date, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
		}
		reservation.Date = date
		reservation.DateKey = domain.DateKey(date)
		slotMoved = true
	}

	if in.TimeSlot != nil {
		if !domain.ValidHoursString(*in.TimeSlot) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeSlot)
		}
		reservation.TimeSlot = *in.TimeSlot
		slotMoved = true
	}

	if slotMoved && domain.Status(reservation.Status).BlocksSlot() {
		existing, err := uc.repo.ListForDate(ctx, reservation.DateKey)
		if err != nil {
			return nil, err
		}
		for _, other := range existing {
			if other.ID == reservation.ID {
				continue
			}
			if other.TimeSlot == reservation.TimeSlot && domain.Status(other.Status).BlocksSlot() {
				return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
		}
	}

	if err := uc.repo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: reservation.ID,
	})

	if reservation.Status != prevStatus {
		uc.notify.ReservationStatusChanged(reservation)
	}

	return reservation, nil
}
