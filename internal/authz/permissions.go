package authz

// Action names every operation the policy can be asked about.
type Action string

const (
	// Customers
	CustomersCreate Action = "customers:create"
	CustomersView   Action = "customers:view"
	CustomersUpdate Action = "customers:update"
	CustomersDelete Action = "customers:delete"

	// Sales persons (administration)
	SalesPersonsCreate Action = "sales-persons:create"
	SalesPersonsView   Action = "sales-persons:view"
	SalesPersonsUpdate Action = "sales-persons:update"
	SalesPersonsDelete Action = "sales-persons:delete"

	// Daily reports
	ReportsCreate Action = "reports:create"
	ReportsView   Action = "reports:view"
	ReportsUpdate Action = "reports:update"
	ReportsDelete Action = "reports:delete"
	ReportsList   Action = "reports:list"
	ReportsExport Action = "reports:export"

	// Manager comments
	CommentsCreate Action = "comments:create"
)

// managerOnly lists the actions gated on the manager flag before any record
// is loaded.
var managerOnly = map[Action]bool{
	SalesPersonsCreate: true,
	SalesPersonsView:   true,
	SalesPersonsUpdate: true,
	SalesPersonsDelete: true,
	CustomersDelete:    true,
	CommentsCreate:     true,
}
