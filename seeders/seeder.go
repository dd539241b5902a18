package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll populates a fresh database with the demo accounts, a handful of
// customers and a few example reports. Every seeder is idempotent: existing
// rows are left alone.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding database...")

	if err := seedSalesPersons(ctx, db); err != nil {
		log.Fatalf("seeding sales persons failed: %v", err)
	}
	if err := seedCustomers(ctx, db); err != nil {
		log.Fatalf("seeding customers failed: %v", err)
	}
	if err := seedDailyReports(ctx, db); err != nil {
		log.Fatalf("seeding daily reports failed: %v", err)
	}

	log.Println("seeding finished")
}
