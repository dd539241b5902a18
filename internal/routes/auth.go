package routes

import (
	"daily-report-system/internal/controllers"
	"daily-report-system/internal/repositories"
	"daily-report-system/internal/services"
	"daily-report-system/pkg/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(publicGroup *echo.Group, secureGroup *echo.Group, dbConn *pgxpool.Pool, jwtSvc service.JWTService, logger *zap.Logger) {
	salesPersonRepository := repositories.NewSalesPersonRepository(dbConn, logger)
	authService := services.NewAuthService(salesPersonRepository, jwtSvc, logger)
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)

	publicGroup.POST("/auth/login", authCtrl.Login)
	publicGroup.POST("/auth/logout", authCtrl.Logout)
	secureGroup.GET("/auth/me", authCtrl.Me)
}
