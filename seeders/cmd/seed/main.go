package main

import (
	"log"

	"daily-report-system/pkg/config"
	"daily-report-system/pkg/database/postgresql"
	"daily-report-system/seeders"
)

func main() {
	cfg := config.New()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	seeders.SeedAll(dbConn)
}
