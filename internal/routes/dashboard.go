package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runDashboardRouter(g *echo.Group, dashboardCtrl *controllers.DashboardController, reportCtrl *controllers.ReportController) {
	g.GET("/dashboard/stats", dashboardCtrl.GetStats)
	g.GET("/reports/requests", reportCtrl.GetReport)
}
