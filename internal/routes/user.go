package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runUserRouter(g *echo.Group, ctrl *controllers.UserController, uploadCtrl *controllers.UploadController) {
	g.GET("/users", ctrl.GetUsers)
	g.GET("/users/:id", ctrl.FindUser)
	g.POST("/users", ctrl.CreateUser)
	g.PUT("/users/:id", ctrl.UpdateUser)
	g.POST("/users/:id/avatar", uploadCtrl.UploadAvatar)
}
