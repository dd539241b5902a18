package routes

import (
	"daily-report-system/internal/controllers"
	"daily-report-system/internal/repositories"
	"daily-report-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runCustomerRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	customerRepository := repositories.NewCustomerRepository(dbConn, logger)
	customerService := services.NewCustomerService(customerRepository, logger)
	customerCtrl := controllers.NewCustomerController(customerService, logger)

	secureGroup.GET("/customers", customerCtrl.GetCustomers)
	secureGroup.GET("/masters/customers", customerCtrl.GetMasterList)
	secureGroup.GET("/customers/:id", customerCtrl.FindCustomer)
	secureGroup.POST("/customers", customerCtrl.CreateCustomer)
	secureGroup.PUT("/customers/:id", customerCtrl.UpdateCustomer)
	secureGroup.DELETE("/customers/:id", customerCtrl.DeleteCustomer)
}
