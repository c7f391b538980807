package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/response"
)

type Handler struct {
	service    *Service
	cookieName string
	tokenTTL   time.Duration
}

func NewHandler(service *Service, cookieName string, tokenTTL time.Duration) *Handler {
	return &Handler{
		service:    service,
		cookieName: cookieName,
		tokenTTL:   tokenTTL,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	// The cookie lets the browser reach gated admin pages; API clients
	// use the token from the body as a bearer header instead.
	c.SetCookie(h.cookieName, result.Token, int(h.tokenTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user": UserSummary{
			ID:       result.User.ID,
			Username: result.User.Username,
			Email:    result.User.Email,
			Role:     string(result.User.Role),
		},
	})
}

// Logout only clears the browser cookie. Issued tokens stay valid until
// they expire; there is no server-side revocation list.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}
