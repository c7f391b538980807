package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/requests")
	{
		group.POST("/booking", h.SubmitBookingRequest)
		group.POST("/contact", h.SubmitContactMessage)
	}
}

func (h *Handler) SubmitBookingRequest(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All required fields must be filled")
		return
	}

	quote, err := h.service.SubmitBookingRequest(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Check the contact details and the stay dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to send the booking request")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusOK,
		"Your booking request has been sent. The owner will get back to you shortly to confirm availability.",
		gin.H{"quote": quote})
}

func (h *Handler) SubmitContactMessage(c *gin.Context) {
	var req ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All required fields must be filled")
		return
	}

	if err := h.service.SubmitContactMessage(c.Request.Context(), req); err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Name, email and message are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to send the message")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Your message has been sent.", nil)
}
