package routes

import (
	"daily-report-system/internal/controllers"
	"daily-report-system/internal/repositories"
	"daily-report-system/internal/services"
	"daily-report-system/pkg/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runSalesPersonRouter(secureGroup *echo.Group, authMW *middleware.AuthMiddleware, dbConn *pgxpool.Pool, logger *zap.Logger) {
	salesPersonRepository := repositories.NewSalesPersonRepository(dbConn, logger)
	dailyReportRepository := repositories.NewDailyReportRepository(dbConn, logger)
	salesPersonService := services.NewSalesPersonService(salesPersonRepository, dailyReportRepository, logger)
	salesPersonCtrl := controllers.NewSalesPersonController(salesPersonService, logger)

	managerGroup := secureGroup.Group("/sales-persons", authMW.RequireManager)
	managerGroup.GET("", salesPersonCtrl.GetSalesPersons)
	managerGroup.GET("/:id", salesPersonCtrl.FindSalesPerson)
	managerGroup.POST("", salesPersonCtrl.CreateSalesPerson)
	managerGroup.PUT("/:id", salesPersonCtrl.UpdateSalesPerson)
	managerGroup.DELETE("/:id", salesPersonCtrl.DeleteSalesPerson)
}
