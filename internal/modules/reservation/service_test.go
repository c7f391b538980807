package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockRepository) ListExcept(ctx context.Context, id string) ([]domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func stay(start, end string) domain.Reservation {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return domain.Reservation{
		ID:        "existing-" + start,
		GuestName: "Guest",
		Email:     "guest@example.com",
		Phone:     "+32 400 00 00 00",
		Start:     s.UTC(),
		End:       e.UTC(),
		Status:    domain.ReservationConfirmed,
	}
}

func validRequest(start, end string) UpsertReservationRequest {
	return UpsertReservationRequest{
		GuestName: "Jean Dupont",
		Email:     "jean.dupont@email.com",
		Phone:     "+33 6 12 34 56 78",
		StartDate: start,
		EndDate:   end,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return([]domain.Reservation{stay("2025-12-20", "2025-12-23")}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, nil)

	// Adjacent to the existing stay: same-day turnover is allowed.
	r, err := service.Create(context.Background(), validRequest("2025-12-23", "2025-12-26"))

	assert.NoError(t, err)
	assert.NotNil(t, r)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
	repo.AssertExpectations(t)
}

func TestCreate_Conflict(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return([]domain.Reservation{stay("2025-12-20", "2025-12-23")}, nil)

	service := NewService(repo, nil)

	_, err := service.Create(context.Background(), validRequest("2025-12-22", "2025-12-25"))

	assert.ErrorIs(t, err, ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InvalidDateOrder(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil)

	for _, dates := range [][2]string{
		{"2025-12-23", "2025-12-20"}, // reversed
		{"2025-12-20", "2025-12-20"}, // same day, zero nights
	} {
		_, err := service.Create(context.Background(), validRequest(dates[0], dates[1]))
		assert.ErrorIs(t, err, ErrValidation)
	}

	repo.AssertNotCalled(t, "List", mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_MissingFields(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil)

	req := validRequest("2025-12-23", "2025-12-26")
	req.Phone = "   "

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_BadDateFormat(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil)

	_, err := service.Create(context.Background(), validRequest("23/12/2025", "26/12/2025"))

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_ExcludesSelfFromConflictScan(t *testing.T) {
	repo := new(MockRepository)
	current := stay("2025-12-20", "2025-12-23")
	current.ID = "res-1"

	repo.On("GetByID", mock.Anything, "res-1").Return(&current, nil)
	// Only third-party stays come back; the edited reservation does not
	// block its own new range.
	repo.On("ListExcept", mock.Anything, "res-1").Return([]domain.Reservation{stay("2026-01-10", "2026-01-12")}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, nil)

	r, err := service.Update(context.Background(), "res-1", validRequest("2025-12-21", "2025-12-24"))

	assert.NoError(t, err)
	assert.Equal(t, "res-1", r.ID)
	repo.AssertExpectations(t)
}

func TestUpdate_ConflictWithOtherReservation(t *testing.T) {
	repo := new(MockRepository)
	current := stay("2025-12-20", "2025-12-23")
	current.ID = "res-1"

	repo.On("GetByID", mock.Anything, "res-1").Return(&current, nil)
	repo.On("ListExcept", mock.Anything, "res-1").Return([]domain.Reservation{stay("2025-12-24", "2025-12-28")}, nil)

	service := NewService(repo, nil)

	_, err := service.Update(context.Background(), "res-1", validRequest("2025-12-22", "2025-12-26"))

	assert.ErrorIs(t, err, ErrConflict)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, nil)

	_, err := service.Update(context.Background(), "missing", validRequest("2025-12-23", "2025-12-26"))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, nil)

	err := service.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	repo := new(MockRepository)
	existing := stay("2025-12-20", "2025-12-23")
	existing.ID = "res-1"
	repo.On("GetByID", mock.Anything, "res-1").Return(&existing, nil)
	repo.On("Delete", mock.Anything, "res-1").Return(nil)

	service := NewService(repo, nil)

	assert.NoError(t, service.Delete(context.Background(), "res-1"))
	repo.AssertExpectations(t)
}

func TestDelete_WaitsForWritersToFinish(t *testing.T) {
	repo := new(MockRepository)
	existing := stay("2025-12-20", "2025-12-23")
	existing.ID = "res-1"
	repo.On("GetByID", mock.Anything, "res-1").Return(&existing, nil)
	repo.On("Delete", mock.Anything, "res-1").Return(nil)

	service := NewService(repo, nil)

	// Simulate an in-flight create/update holding the write lock.
	service.mu.Lock()

	done := make(chan error, 1)
	go func() {
		done <- service.Delete(context.Background(), "res-1")
	}()

	select {
	case <-done:
		t.Fatal("delete ran inside another writer's critical section")
	case <-time.After(50 * time.Millisecond):
	}

	service.mu.Unlock()
	assert.NoError(t, <-done)
	repo.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, nil)

	_, err := service.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBusyRanges_FiltersWindow(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return([]domain.Reservation{
		stay("2025-11-01", "2025-11-05"),
		stay("2025-12-20", "2025-12-23"),
		stay("2026-02-01", "2026-02-03"),
	}, nil)

	service := NewService(repo, nil)

	ranges, err := service.BusyRanges(context.Background(), "2025-12-01", "2026-01-01")

	assert.NoError(t, err)
	assert.Len(t, ranges, 1)
	assert.Equal(t, "2025-12-20", ranges[0].StartDate)
	assert.Equal(t, "2025-12-23", ranges[0].EndDate)
}

func TestBusyRanges_BadWindow(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil)

	_, err := service.BusyRanges(context.Background(), "december", "")

	assert.ErrorIs(t, err, ErrValidation)
}
