package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"daily-report-system/pkg/middleware"
	"daily-report-system/pkg/service"
)

// InitRouter wires the whole API surface. Everything except login lives
// behind the session middleware; the sales-person admin group additionally
// requires the manager role.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, jwtSvc service.JWTService, logger *zap.Logger) {
	api := e.Group("/api/v1")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, dbConn, jwtSvc, logger)
	runCustomerRouter(secureGroup, dbConn, logger)
	runSalesPersonRouter(secureGroup, authMW, dbConn, logger)
	runDailyReportRouter(secureGroup, authMW, dbConn, logger)
	runDashboardRouter(secureGroup, dbConn, logger)
}
