package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/pkg/logger"
	"gearguard/seeders"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "path to the goose migrations directory")
	skipMigrate := flag.Bool("skip-migrate", false, "seed only, do not run migrations")
	flag.Parse()

	cfg := config.New()

	if !*skipMigrate {
		if err := migrate(cfg.Postgres.DSN, *migrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		log.Println("migrations applied")
	}

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	seeder := seeders.NewSeeder(
		repositories.NewEquipmentRepository(dbPool),
		repositories.NewTeamRepository(dbPool),
		repositories.NewUserRepository(dbPool),
		repositories.NewRequestRepository(dbPool),
		zapLogger,
	)
	if err := seeder.SeedIfEmpty(context.Background()); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("done")
}

func migrate(dsn, dir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, dir)
}
