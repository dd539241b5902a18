package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type DailyReport struct {
	ID            int64       `json:"id" db:"id"`
	SalesPersonID int64       `json:"salesPersonId" db:"sales_person_id"`
	ReportDate    time.Time   `json:"reportDate" db:"report_date"`
	Problem       null.String `json:"problem" db:"problem"`
	Plan          null.String `json:"plan" db:"plan"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`

	// Joined columns, populated by list and detail queries.
	SalesPersonName       string      `json:"-" db:"sales_person_name"`
	SalesPersonDepartment null.String `json:"-" db:"sales_person_department"`
	VisitCount            int64       `json:"-" db:"visit_count"`
	CommentCount          int64       `json:"-" db:"comment_count"`
}

// VisitRecord rows are replaced as a whole set on every report update, never
// patched one by one.
type VisitRecord struct {
	ID           int64       `json:"id" db:"id"`
	ReportID     int64       `json:"reportId" db:"report_id"`
	CustomerID   int64       `json:"customerId" db:"customer_id"`
	VisitTime    null.String `json:"visitTime" db:"visit_time"`
	VisitContent string      `json:"visitContent" db:"visit_content"`

	CustomerName string `json:"-" db:"customer_name"`
}

// ManagerComment is append-only: no exposed operation updates or deletes one.
type ManagerComment struct {
	ID        int64     `json:"id" db:"id"`
	ReportID  int64     `json:"reportId" db:"report_id"`
	ManagerID int64     `json:"managerId" db:"manager_id"`
	Coment    string    `json:"coment" db:"coment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	ManagerName string `json:"-" db:"manager_name"`
}
