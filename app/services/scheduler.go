package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
)

// StartScheduler starts the background task scheduler. The overdue sweep runs
// once at startup and then nightly just after midnight.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")

		sweepOverdue(db)

		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 12:05 AM (00:05)
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [00:05]...")
				sweepOverdue(db)
			}
		}
	}()
}

func sweepOverdue(db *sql.DB) {
	updated, err := database.SweepOverdue(db, time.Now())
	if err != nil {
		log.Printf("Error sweeping overdue dues: %v", err)
		return
	}
	if updated > 0 {
		log.Printf("Marked %d fee dues as overdue", updated)
	}
}
