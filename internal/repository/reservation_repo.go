package repository

import (
	"context"
	"time"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	GuestName string    `gorm:"column:guest_name"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	Note      *string   `gorm:"column:note"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var note string
	if m.Note != nil {
		note = *m.Note
	}

	return &domain.Reservation{
		ID:        m.ID,
		GuestName: m.GuestName,
		Email:     m.Email,
		Phone:     m.Phone,
		Start:     m.StartDate,
		End:       m.EndDate,
		Note:      note,
		Status:    domain.ReservationStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var note *string
	if r.Note != "" {
		v := r.Note
		note = &v
	}

	return reservationModel{
		ID:        r.ID,
		GuestName: r.GuestName,
		Email:     r.Email,
		Phone:     r.Phone,
		StartDate: r.Start,
		EndDate:   r.End,
		Note:      note,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	// Full replace of the row; Save writes every column including the
	// cleared note.
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&reservationModel{}).Error
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// List returns every reservation ordered by arrival day ascending.
func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := r.db.WithContext(ctx).Order("start_date ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ListExcept returns every reservation except the one being edited, for
// the update-path conflict scan.
func (r *ReservationRepository) ListExcept(ctx context.Context, id string) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := r.db.WithContext(ctx).
		Where("id <> ?", id).
		Order("start_date ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}
