package seeders

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedDailyReports creates yesterday's report for the first regular sales
// person, with one visit and one manager comment, so a fresh install has
// something to look at.
func seedDailyReports(ctx context.Context, db *pgxpool.Pool) error {
	var salesPersonID, managerID, customerID int64

	err := db.QueryRow(ctx,
		"SELECT id FROM sales_persons WHERE is_manager = FALSE ORDER BY id LIMIT 1",
	).Scan(&salesPersonID)
	if err != nil {
		return err
	}
	err = db.QueryRow(ctx,
		"SELECT id FROM sales_persons WHERE is_manager = TRUE ORDER BY id LIMIT 1",
	).Scan(&managerID)
	if err != nil {
		return err
	}
	err = db.QueryRow(ctx, "SELECT id FROM customers ORDER BY id LIMIT 1").Scan(&customerID)
	if err != nil {
		return err
	}

	reportDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var exists bool
	err = db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM daily_reports WHERE sales_person_id = $1 AND report_date = $2)",
		salesPersonID, reportDate,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	var reportID int64
	err = db.QueryRow(ctx,
		`INSERT INTO daily_reports (sales_person_id, report_date, problem, plan)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		salesPersonID, reportDate,
		"Pricing concerns raised on the new product line",
		"Prepare a revised quote and follow up next week",
	).Scan(&reportID)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO visit_records (report_id, customer_id, visit_time, visit_content)
		 VALUES ($1, $2, $3::time, $4)`,
		reportID, customerID, "10:30",
		"Introduced the new product line and collected initial feedback",
	)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO manager_comments (report_id, manager_id, coment)
		 VALUES ($1, $2, $3)`,
		reportID, managerID,
		"Good progress. Loop me in on the revised quote before sending it.",
	)
	if err != nil {
		return err
	}

	log.Printf("created demo daily report %d", reportID)
	return nil
}
