package admin

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/response"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded admin pages for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterPublicPages mounts the login page, the only admin page
// reachable without a token.
func (h *Handler) RegisterPublicPages(rg *gin.RouterGroup) {
	rg.GET("/login", h.LoginPage)
}

// RegisterPages mounts the gated admin pages; the group must carry the
// redirecting auth middleware.
func (h *Handler) RegisterPages(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.DashboardPage)
}

// RegisterProtectedRoutes mounts the gated admin API: the live-update
// websocket and account maintenance.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.Websocket)
	rg.DELETE("/users", h.DeleteUser)
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Admin login"})
}

func (h *Handler) DashboardPage(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":    "Reservations",
		"username": c.GetString("username"),
	})
}

// Websocket upgrades a dashboard connection and keeps it registered
// until the client goes away. The read loop only drains control frames;
// traffic is one-way, server to dashboard.
func (h *Handler) Websocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) DeleteUser(c *gin.Context) {
	var id int64
	if raw := c.Query("id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
			return
		}
		id = parsed
	}

	user, err := h.service.DeleteUser(c.Request.Context(), id, c.Query("username"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id or username is required")
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete user")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "User "+user.Username+" deleted", nil)
}
