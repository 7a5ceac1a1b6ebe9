package reservation

import (
	"github.com/sitekit-labs/sitekit-api/internal/audit"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

// AuditSink is satisfied by *audit.Dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// Notifier is satisfied by *notify.Service.
type Notifier interface {
	ReservationCreated(r *models.Reservation)
	ReservationStatusChanged(r *models.Reservation)
}
