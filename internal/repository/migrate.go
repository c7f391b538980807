package repository

import (
	"gorm.io/gorm"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/database"
)

// reservationExclusionDDL installs the database-level backstop against
// overlapping stays. The range is built directly over the timestamp
// columns: stored dates are normalized to UTC midnight, so a half-open
// tstzrange covers exactly the stay's nights, and turnover days where
// one range ends as the next begins do not overlap, matching
// domain.DateRange.Overlaps. Casting to date here would not work; index
// expressions must be immutable and the timestamptz-to-date cast is
// only stable.
const reservationExclusionDDL = `
ALTER TABLE reservations
ADD CONSTRAINT no_overlapping_stays
EXCLUDE USING gist (tstzrange(start_date, end_date, '[)') WITH &&)
`

// AutoMigrate creates or updates the schema for all row models. On
// postgres it additionally installs an exclusion constraint so the
// database itself rejects overlapping stays even if two writers race
// past the application-level check.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &reservationModel{}); err != nil {
		return err
	}

	if database.IsPostgres(db) {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		err := db.Exec(reservationExclusionDDL).Error
		if err != nil && !isDuplicateObject(err) {
			return err
		}
	}

	return nil
}
