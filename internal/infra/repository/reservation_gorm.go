package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitekit-labs/sitekit-api/internal/cache"
	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

type ReservationGormRepository struct {
	db    *gorm.DB
	cache *cache.SettingsCache
}

func NewReservationGormRepository(db *gorm.DB, settingsCache *cache.SettingsCache) *ReservationGormRepository {
	return &ReservationGormRepository{
		db:    db,
		cache: settingsCache,
	}
}

// --------------------------------------------------
// Settings (singleton)
// --------------------------------------------------

// GetSettings resolves the singleton, creating it with defaults on first
// access. The insert uses ON CONFLICT DO NOTHING so concurrent first reads
// cannot produce duplicate defaults.
func (r *ReservationGormRepository) GetSettings(
	ctx context.Context,
) (*models.ReservationSettings, error) {

	if cached := r.cache.Get(ctx); cached != nil {
		return cached, nil
	}

	var settings models.ReservationSettings
	err := r.db.WithContext(ctx).First(&settings, models.SettingsID).Error
	if err == nil {
		r.cache.Set(ctx, &settings)
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := domain.DefaultSettings()
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(defaults).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&settings, models.SettingsID).Error; err != nil {
		return nil, err
	}

	r.cache.Set(ctx, &settings)
	return &settings, nil
}

func (r *ReservationGormRepository) SaveSettings(
	ctx context.Context,
	settings *models.ReservationSettings,
) error {

	settings.ID = models.SettingsID
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return err
	}

	r.cache.Invalidate(ctx)
	return nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ReservationGormRepository) ListForDate(
	ctx context.Context,
	dateKey string,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("date_key = ?", dateKey).
		Order("time_slot ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationGormRepository) List(
	ctx context.Context,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("date_key ASC, time_slot ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservation).Error; err != nil {
		return nil, err
	}

	return &reservation, nil
}

// Create persists a reservation. A duplicate on the active-slot unique
// index surfaces as slot_conflict, closing the check-then-insert race.
func (r *ReservationGormRepository) Create(
	ctx context.Context,
	reservation *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Create(reservation).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

func (r *ReservationGormRepository) Update(
	ctx context.Context,
	reservation *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Save(reservation).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

func (r *ReservationGormRepository) Delete(
	ctx context.Context,
	id string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Reservation{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
