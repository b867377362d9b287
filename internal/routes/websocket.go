package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runWebsocketRouter(e *echo.Echo, ctrl *controllers.WebsocketController) {
	e.GET("/ws", ctrl.Subscribe)
}
