package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/listeners"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/internal/store"
	"gearguard/pkg/config"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/filestorage"
	ws "gearguard/pkg/websocket"
	"gearguard/seeders"
)

// InitRouter wires repositories, services and controllers and mounts every
// route under /api. It returns the state store (still uninitialized) and
// the preventive reminder so the caller controls their lifecycle.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	hub *ws.Hub,
	bus *eventbus.Bus,
	cfg *config.Config,
	logger *zap.Logger,
) (*store.Store, *services.PreventiveReminder, error) {
	api := e.Group("/api")

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		return nil, nil, err
	}
	txManager := repositories.NewTxManager(dbConn)

	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)

	seeder := seeders.NewSeeder(equipmentRepo, teamRepo, userRepo, requestRepo, logger)
	st := store.New(equipmentRepo, teamRepo, userRepo, requestRepo, seeder, bus, logger)

	equipmentService := services.NewEquipmentService(equipmentRepo, bus, logger)
	teamService := services.NewTeamService(teamRepo, userRepo, txManager, bus, logger)
	userService := services.NewUserService(userRepo, teamService, bus, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, teamRepo, txManager, bus, logger)
	dashboardService := services.NewDashboardService(st)
	reportService := services.NewReportService(dashboardService)
	reminder := services.NewPreventiveReminder(st, bus, logger)

	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	requestCtrl := controllers.NewRequestController(requestService, dashboardService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	uploadCtrl := controllers.NewUploadController(fileStorage, userService, cfg.Upload, logger)
	websocketCtrl := controllers.NewWebsocketController(hub, st, cfg.Server.AllowedOrigins, logger)

	listeners.NewSnapshotListener(st, hub, bus, logger).Register()

	runEquipmentRouter(api, equipmentCtrl, uploadCtrl)
	runTeamRouter(api, teamCtrl)
	runUserRouter(api, userCtrl, uploadCtrl)
	runRequestRouter(api, requestCtrl, uploadCtrl)
	runDashboardRouter(api, dashboardCtrl, reportCtrl)
	runWebsocketRouter(e, websocketCtrl)

	logger.Info("routes mounted")
	return st, reminder, nil
}
