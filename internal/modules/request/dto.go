package request

type BookingRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Quote is the computed stay summary echoed back to the guest and
// included in the owner email.
type Quote struct {
	Nights   int     `json:"nights"`
	Rate     float64 `json:"nightly_rate_eur"`
	Cleaning float64 `json:"cleaning_fee_eur"`
	Total    float64 `json:"total_eur"`
}
