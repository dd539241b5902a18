package dto

import "time"

type VisitRecordInputDTO struct {
	// ID is informational only: rows are always recreated on update, the
	// submitted id is echoed back but never preserves row identity.
	ID           *int64  `json:"id"`
	CustomerID   int64   `json:"customerId" validate:"required"`
	VisitTime    *string `json:"visitTime" validate:"omitempty,hhmm"`
	VisitContent string  `json:"visitContent" validate:"required,min=1"`
}

type CreateDailyReportDTO struct {
	ReportDate   string                `json:"reportDate" validate:"required,dateonly"`
	Problem      *string               `json:"problem"`
	Plan         *string               `json:"plan"`
	VisitRecords []VisitRecordInputDTO `json:"visitRecords" validate:"omitempty,dive"`
}

type UpdateDailyReportDTO = CreateDailyReportDTO

type CreateCommentDTO struct {
	Coment string `json:"coment" validate:"required,min=1"`
}

type ShortSalesPersonDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ReportSalesPersonDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Department *string `json:"department"`
}

type ShortCustomerDTO struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
}

// DailyReportListItemDTO is one row of the report list.
type DailyReportListItemDTO struct {
	ID           int64               `json:"id"`
	ReportDate   string              `json:"reportDate"`
	SalesPerson  ShortSalesPersonDTO `json:"salesPerson"`
	VisitCount   int64               `json:"visitCount"`
	CommentCount int64               `json:"commentCount"`
	CreatedAt    string              `json:"createdAt"`
}

// VisitRecordDTO appears in create/update responses.
type VisitRecordDTO struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	CustomerName string  `json:"customerName"`
	VisitTime    *string `json:"visitTime"`
	VisitContent string  `json:"visitContent"`
}

// VisitRecordDetailDTO appears in the report detail.
type VisitRecordDetailDTO struct {
	ID           int64            `json:"id"`
	Customer     ShortCustomerDTO `json:"customer"`
	VisitTime    *string          `json:"visitTime"`
	VisitContent string           `json:"visitContent"`
}

type CommentDTO struct {
	ID        int64               `json:"id"`
	Manager   ShortSalesPersonDTO `json:"manager"`
	Coment    string              `json:"coment"`
	CreatedAt string              `json:"createdAt"`
}

type DailyReportDTO struct {
	ID            int64            `json:"id"`
	ReportDate    string           `json:"reportDate"`
	SalesPersonID int64            `json:"salesPersonId"`
	Problem       *string          `json:"problem"`
	Plan          *string          `json:"plan"`
	VisitRecords  []VisitRecordDTO `json:"visitRecords"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
}

type DailyReportDetailDTO struct {
	ID           int64                  `json:"id"`
	ReportDate   string                 `json:"reportDate"`
	SalesPerson  ReportSalesPersonDTO   `json:"salesPerson"`
	Problem      *string                `json:"problem"`
	Plan         *string                `json:"plan"`
	VisitRecords []VisitRecordDetailDTO `json:"visitRecords"`
	Comments     []CommentDTO           `json:"comments"`
	IsOwner      bool                   `json:"isOwner"`
	CreatedAt    string                 `json:"createdAt"`
	UpdatedAt    string                 `json:"updatedAt"`
}

// ReportExportRowDTO is one flattened row of the XLSX export: a report with
// no visits contributes a single row, otherwise one row per visit.
type ReportExportRowDTO struct {
	ReportDate   string
	SalesPerson  string
	Department   *string
	Customer     string
	VisitTime    *string
	VisitContent string
	Problem      *string
	Plan         *string
}

// DailyReportListFilter is parsed from list query parameters. SalesPersonID
// is the effective scope after the authorization policy has been applied.
type DailyReportListFilter struct {
	SalesPersonID *int64
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int
	PerPage       int
}
