package domain

import "time"

type ReservationStatus string

const (
	// ReservationConfirmed is the only status in use today: every stored
	// reservation has been confirmed by the owner. The field exists so
	// tentative holds can be added without a schema change.
	ReservationConfirmed ReservationStatus = "confirmed"
)

// Reservation is a confirmed stay at the gîte. Start and End are
// normalized to midnight UTC; time of day never matters.
type Reservation struct {
	ID        string            `json:"id"`
	GuestName string            `json:"guest_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Start     time.Time         `json:"start_date"`
	End       time.Time         `json:"end_date"`
	Note      string            `json:"note,omitempty"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Range returns the stay interval of the reservation.
func (r *Reservation) Range() DateRange {
	return DateRange{Start: r.Start, End: r.End}
}
