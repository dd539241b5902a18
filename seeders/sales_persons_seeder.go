package seeders

import (
	"context"
	"log"

	"daily-report-system/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

type salesPersonSeed struct {
	name       string
	email      string
	password   string
	department string
	isManager  bool
}

var salesPersonSeeds = []salesPersonSeed{
	{"Manager Sato", "manager@example.com", "password123", "Sales Dept 1", true},
	{"Tanaka Ichiro", "tanaka@example.com", "password123", "Sales Dept 1", false},
	{"Suzuki Hanako", "suzuki@example.com", "password123", "Sales Dept 2", false},
}

func seedSalesPersons(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range salesPersonSeeds {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM sales_persons WHERE email = $1)", seed.email,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		hashed, err := utils.HashPassword(seed.password)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO sales_persons (name, email, password, department, is_manager)
			 VALUES ($1, $2, $3, $4, $5)`,
			seed.name, seed.email, hashed, seed.department, seed.isManager,
		)
		if err != nil {
			return err
		}
		log.Printf("created sales person %s", seed.email)
	}
	return nil
}
