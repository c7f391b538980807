package reservation

type UpsertReservationRequest struct {
	GuestName string `json:"guest_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Note      string `json:"note"`
}

// BusyRange is the public calendar feed entry: occupied dates without
// any guest details.
type BusyRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
