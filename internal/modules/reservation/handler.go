package reservation

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

// RegisterPublicRoutes exposes the read side: anyone may consult the
// calendar.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/busy", h.BusyRanges)
	rg.GET("/reservations/:id", h.Get)
}

// RegisterProtectedRoutes exposes the mutating side behind the auth gate.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.Create)
	rg.PUT("/reservations/:id", h.Update)
	rg.DELETE("/reservations/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	reservations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": reservations})
}

func (h *Handler) BusyRanges(c *gin.Context) {
	ranges, err := h.service.BusyRanges(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must use the YYYY-MM-DD format")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"busy": ranges})
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create reservation")
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Reservation created", gin.H{"reservation": r})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpsertReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update reservation")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Reservation updated", gin.H{"reservation": r})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err, "Failed to delete reservation")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Reservation deleted", nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"All required fields must be filled and the departure date must be after the arrival date")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT",
			"These dates conflict with an existing reservation")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
