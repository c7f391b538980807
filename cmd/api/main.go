package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/config"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/database"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/middleware"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/modules/admin"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/modules/auth"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/modules/request"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/modules/reservation"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/jwt"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/mailer"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwt.New(cfg.JWTSecret, cfg.TokenTTL)
	hub := admin.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, cfg.AuthCookieName, cfg.TokenTTL)

	reservationService := reservation.NewService(reservationRepo, hub)
	reservationHandler := reservation.NewHandler(reservationService)

	requestService := request.NewService(
		mailer.NewDevConsoleMailer(true),
		cfg.NightlyRateEUR,
		cfg.CleaningFeeEUR,
	)
	requestHandler := request.NewHandler(requestService)

	adminService := admin.NewService(userRepo)
	adminHandler := admin.NewHandler(adminService, hub)

	r := gin.Default()
	r.SetHTMLTemplate(admin.Templates())
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		reservationHandler.RegisterPublicRoutes(v1)
		requestHandler.RegisterRoutes(v1)

		// mutating reservation endpoints and the admin API sit behind
		// the token gate
		protected := v1.Group("/")
		protected.Use(middleware.RequireToken(j, cfg.AuthCookieName))
		{
			reservationHandler.RegisterProtectedRoutes(protected)

			adminAPI := protected.Group("/admin")
			adminAPI.Use(middleware.AdminOnly())
			adminHandler.RegisterProtectedRoutes(adminAPI)
		}
	}

	// admin pages: login is public, everything else redirects there
	pages := r.Group("/admin")
	adminHandler.RegisterPublicPages(pages)

	gated := pages.Group("/")
	gated.Use(middleware.RequireTokenOrRedirect(j, cfg.AuthCookieName, cfg.AdminLoginPath))
	adminHandler.RegisterPages(gated)

	r.GET("/admin", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
