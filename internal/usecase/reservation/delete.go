package reservation

import (
	"context"

	"github.com/sitekit-labs/sitekit-api/internal/audit"
	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit AuditSink
}

func NewDeleteReservation(repo domain.Repository, auditSink AuditSink) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: auditSink,
	}
}

// Execute hard-deletes the reservation and reports whether a row was
// actually removed.
func (uc *DeleteReservation) Execute(
	ctx context.Context,
	actorID *uint,
	id string,
) (bool, error) {

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		uc.audit.Dispatch(audit.Event{
			UserID:   actorID,
			Action:   "reservation_deleted",
			Entity:   "reservation",
			EntityID: id,
		})
	}

	return deleted, nil
}
