package boot

import (
	"log"
	"time"

	"padelbook/src/config"
	"padelbook/src/db"
	"padelbook/src/lib"
	"padelbook/src/models"
	"padelbook/src/types"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Court{},
		&models.Reservation{},
		&models.Payment{},
		&models.PromoCode{},
		&models.Tournament{},
		&models.TournamentEntrant{},
		&models.Match{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler registers the pending-reservation sweeper and starts the
// scheduler. The sweeper is the periodic cleanup for reservations whose
// payment never arrived; it lives outside the booking core on purpose.
func InitScheduler() {
	_, err := lib.CreateDurationJob(ExpirePendingReservations, 5*time.Minute)
	if err != nil {
		log.Printf("Error scheduling reservation sweeper: %s\n", err.Error())
		return
	}
	lib.StartScheduler()
}

// ExpirePendingReservations cancels reservations that stayed PENDING past
// the payment TTL, and fails their payment records.
func ExpirePendingReservations() {
	ttl := time.Duration(config.PendingReservationTTLMinutes()) * time.Minute
	cutoff := time.Now().Add(-ttl)
	conn := db.GetDb()
	err := conn.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.
			Model(&models.Reservation{}).
			Where("status = ?", types.RESERVATION_PENDING).
			Where("created_at < ?", cutoff).
			Pluck("id", &ids).
			Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.
			Model(&models.Reservation{}).
			Where("id IN ?", ids).
			Update("status", types.RESERVATION_CANCELED).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Payment{}).
			Where("reservation_id IN ?", ids).
			Where("status = ?", types.PAYMENT_PENDING).
			Update("status", types.PAYMENT_FAILED).
			Error; err != nil {
			return err
		}
		log.Printf("Expired %d pending reservations\n", len(ids))
		return nil
	})
	if err != nil {
		log.Printf("Error while expiring pending reservations: %s\n", err.Error())
	}
}
