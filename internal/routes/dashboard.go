package routes

import (
	"daily-report-system/internal/controllers"
	"daily-report-system/internal/repositories"
	"daily-report-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runDashboardRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	dashboardRepository := repositories.NewDashboardRepository(dbConn)
	commentRepository := repositories.NewManagerCommentRepository(dbConn, logger)
	dashboardService := services.NewDashboardService(dashboardRepository, commentRepository, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	secureGroup.GET("/dashboard", dashboardCtrl.GetDashboard)
}
