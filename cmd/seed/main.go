package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/database"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/modules/reservation"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gite.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// ================== ADMIN ==================
	if _, err := userRepo.GetByUsername(ctx, "admin1"); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal(err)
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := domain.User{
			Username:     "admin1",
			Email:        "admin@gite-ellezelles.be",
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
		}
		if err := userRepo.Create(ctx, &admin); err != nil {
			log.Fatal("admin creation failed:", err)
		}
		log.Println("Admin created: admin1 / admin123")
	} else {
		log.Println("Admin already exists, skipping")
	}

	// ================== DEMO RESERVATIONS ==================
	existing, err := reservationRepo.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Printf("Found %d reservations, skipping demo data", len(existing))
		return
	}

	// Going through the service exercises the overlap check; the three
	// demo stays are back to back with same-day turnovers.
	svc := reservation.NewService(reservationRepo, nil)
	demo := []reservation.UpsertReservationRequest{
		{
			GuestName: "Jean Dupont",
			Email:     "jean.dupont@email.com",
			Phone:     "+33 6 12 34 56 78",
			StartDate: "2025-12-20",
			EndDate:   "2025-12-23",
			Note:      "Family stay, 2 adults + 2 children",
		},
		{
			GuestName: "Marie Martin",
			Email:     "marie.martin@email.com",
			Phone:     "+33 6 98 76 54 32",
			StartDate: "2025-12-23",
			EndDate:   "2026-01-02",
			Note:      "New Year's Eve",
		},
		{
			GuestName: "Pierre Lambert",
			Email:     "pierre.lambert@email.com",
			Phone:     "+33 6 55 44 33 22",
			StartDate: "2026-01-02",
			EndDate:   "2026-01-05",
			Note:      "Relaxing weekend",
		},
	}

	for _, req := range demo {
		if _, err := svc.Create(ctx, req); err != nil {
			log.Fatalf("demo reservation for %s failed: %v", req.GuestName, err)
		}
	}
	log.Printf("Seed completed: %d demo reservations", len(demo))
}
