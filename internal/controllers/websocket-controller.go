package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/events"
	"gearguard/internal/store"
	ws "gearguard/pkg/websocket"
)

type WebsocketController struct {
	hub      *ws.Hub
	store    *store.Store
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewWebsocketController(hub *ws.Hub, st *store.Store, allowedOrigins []string, logger *zap.Logger) *WebsocketController {
	return &WebsocketController{
		hub:   hub,
		store: st,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
		logger: logger,
	}
}

// Subscribe upgrades the connection, pushes the current snapshot of every
// collection and then keeps the client on the broadcast list.
func (c *WebsocketController) Subscribe(ctx echo.Context) error {
	conn, err := c.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", zap.Error(err))
		return err
	}

	client := ws.NewClient(c.hub, conn, c.logger)
	c.hub.Register <- client

	for _, collection := range events.Collections {
		payload, err := c.store.Collection(collection)
		if err != nil {
			continue
		}
		if err := c.hub.SendTo(client, collection+".snapshot", payload); err != nil {
			c.logger.Warn("initial snapshot push failed",
				zap.String("collection", collection), zap.Error(err))
		}
	}

	go client.WritePump()
	go client.ReadPump()
	return nil
}
