package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gearguard/internal/events"
	"gearguard/internal/routes"
	"gearguard/pkg/config"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/database/postgresql"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	applogger "gearguard/pkg/logger"
	"gearguard/pkg/middleware"
	"gearguard/pkg/utils"
	ws "gearguard/pkg/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.InjectLogger(logger))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	absUploads, err := filepath.Abs(cfg.Upload.BasePath)
	if err != nil {
		logger.Fatal("could not resolve uploads directory", zap.Error(err))
	}
	e.Static("/uploads", absUploads)

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("could not register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()
	logger.Info("connected to PostgreSQL")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New(logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, cross-instance events disabled", zap.Error(err))
	} else {
		bridge := eventbus.NewRedisBridge(bus, redisClient, "gearguard.events", logger)
		names := make([]string, 0, len(events.Collections))
		for _, collection := range events.Collections {
			names = append(names, events.ChangedEventName(collection))
		}
		bridge.Forward(names...)
		go bridge.Run(ctx)
		logger.Info("redis event bridge running")
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	st, reminder, err := routes.InitRouter(e, dbConn, hub, bus, cfg, logger)
	if err != nil {
		logger.Fatal("could not initialize routes", zap.Error(err))
	}

	if err := st.Initialize(ctx); err != nil {
		logger.Fatal("could not initialize state store", zap.Error(err))
	}

	if err := reminder.Start(); err != nil {
		logger.Fatal("could not start preventive reminder", zap.Error(err))
	}
	defer reminder.Stop()

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
