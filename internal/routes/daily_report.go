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

func runDailyReportRouter(secureGroup *echo.Group, authMW *middleware.AuthMiddleware, dbConn *pgxpool.Pool, logger *zap.Logger) {
	dailyReportRepository := repositories.NewDailyReportRepository(dbConn, logger)
	commentRepository := repositories.NewManagerCommentRepository(dbConn, logger)
	txManager := repositories.NewTxManager(dbConn)
	dailyReportService := services.NewDailyReportService(dailyReportRepository, commentRepository, txManager, logger)
	dailyReportCtrl := controllers.NewDailyReportController(dailyReportService, logger)

	secureGroup.GET("/daily-reports", dailyReportCtrl.GetDailyReports)
	secureGroup.GET("/daily-reports/export", dailyReportCtrl.ExportDailyReports)
	secureGroup.GET("/daily-reports/:id", dailyReportCtrl.FindDailyReport)
	secureGroup.POST("/daily-reports", dailyReportCtrl.CreateDailyReport)
	secureGroup.PUT("/daily-reports/:id", dailyReportCtrl.UpdateDailyReport)
	secureGroup.DELETE("/daily-reports/:id", dailyReportCtrl.DeleteDailyReport)
	secureGroup.POST("/daily-reports/:id/comments", dailyReportCtrl.AddComment, authMW.RequireManager)
}
