package reservation

import (
	"context"

	"github.com/sitekit-labs/sitekit-api/internal/models"
)

type Repository interface {
	// -------- Settings (singleton) --------
	GetSettings(
		ctx context.Context,
	) (*models.ReservationSettings, error)

	SaveSettings(
		ctx context.Context,
		settings *models.ReservationSettings,
	) error

	// -------- Reservations --------
	ListForDate(
		ctx context.Context,
		dateKey string,
	) ([]models.Reservation, error)

	List(
		ctx context.Context,
	) ([]models.Reservation, error)

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	Create(
		ctx context.Context,
		r *models.Reservation,
	) error

	Update(
		ctx context.Context,
		r *models.Reservation,
	) error

	Delete(
		ctx context.Context,
		id string,
	) (bool, error)
}
