package reservation

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitekit-labs/sitekit-api/internal/audit"
	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetSettings(ctx context.Context) (*models.ReservationSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationSettings), args.Error(1)
}

func (m *mockRepo) SaveSettings(ctx context.Context, s *models.ReservationSettings) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockRepo) ListForDate(ctx context.Context, dateKey string) ([]models.Reservation, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]models.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, r *models.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepo) Update(ctx context.Context, r *models.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ domain.Repository = (*mockRepo)(nil)

type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

type fakeNotifier struct {
	created       []*models.Reservation
	statusChanged []*models.Reservation
}

func (f *fakeNotifier) ReservationCreated(r *models.Reservation) {
	f.created = append(f.created, r)
}

func (f *fakeNotifier) ReservationStatusChanged(r *models.Reservation) {
	f.statusChanged = append(f.statusChanged, r)
}

func settingsFixture() *models.ReservationSettings {
	s := domain.DefaultSettings()
	s.BusinessHours["monday"] = models.DayHours{Enabled: true, Open: "09:00", Close: "12:00"}
	return s
}
