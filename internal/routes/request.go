package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(g *echo.Group, ctrl *controllers.RequestController, uploadCtrl *controllers.UploadController) {
	g.GET("/requests", ctrl.GetRequests)
	g.GET("/requests/kanban", ctrl.GetKanban)
	g.GET("/requests/calendar", ctrl.GetCalendar)
	g.GET("/requests/:id", ctrl.FindRequest)
	g.POST("/requests", ctrl.CreateRequest)
	g.PUT("/requests/:id", ctrl.UpdateRequest)
	g.DELETE("/requests/:id", ctrl.DeleteRequest)
	g.POST("/requests/:id/move", ctrl.MoveRequest)
	g.POST("/requests/:id/attachments", uploadCtrl.UploadRequestAttachment)
	g.GET("/requests/:id/attachments", uploadCtrl.ListRequestAttachments)
}
