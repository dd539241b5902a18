package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type customerSeed struct {
	companyName   string
	companyPerson string
	email         string
	address       string
	phone         string
}

var customerSeeds = []customerSeed{
	{"Yamada Trading Co.", "Yamada Taro", "yamada@yamada-trading.example", "1-2-3 Chuo, Tokyo", "03-1234-5678"},
	{"Kawasaki Industries", "Kawasaki Jiro", "info@kawasaki-ind.example", "4-5-6 Minato, Yokohama", "045-987-6543"},
	{"Aoba Systems", "Aoba Saburo", "contact@aoba-sys.example", "7-8-9 Aoba, Sendai", "022-111-2222"},
}

func seedCustomers(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range customerSeeds {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM customers WHERE company_name = $1)", seed.companyName,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx,
			`INSERT INTO customers (company_name, company_person, email, address, phone)
			 VALUES ($1, $2, $3, $4, $5)`,
			seed.companyName, seed.companyPerson, seed.email, seed.address, seed.phone,
		)
		if err != nil {
			return err
		}
		log.Printf("created customer %s", seed.companyName)
	}
	return nil
}
