package reservation

import (
	"context"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
)

// Repository defines the persistence operations the service needs.
type Repository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	ListExcept(ctx context.Context, id string) ([]domain.Reservation, error)
}

// EventNotifier receives reservation mutations so open admin dashboards
// can refresh their calendars. Delivery is best effort.
type EventNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation) error
	NotifyReservationUpdated(ctx context.Context, r *domain.Reservation) error
	NotifyReservationDeleted(ctx context.Context, id string) error
}
