package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"lrslens/adapters/extract"
	"lrslens/adapters/postgres"
	"lrslens/app"
	"lrslens/internal"
	"lrslens/internal/config"
	"lrslens/internal/errors"
	"lrslens/ports"
	"lrslens/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	loader := extract.NewLoader(appConfig.Data, logger)
	snap, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load input extracts: %v", err)
	}

	archive, db, err := initArchive(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize run archive: %v", err)
	}
	if db != nil {
		defer db.Close()
	}

	reports := app.NewReportService(appConfig.Analysis, logger)
	server := ui.NewServer(reports, loader, snap, archive, logger)

	log.Printf("Starting lrslens view server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}

// initArchive connects the optional PostgreSQL run archive. An empty
// DATABASE_URL disables archiving; the views work the same without it.
func initArchive(appConfig *config.Config) (ports.RunArchive, *sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		log.Println("No DATABASE_URL configured, run archiving disabled")
		return nil, nil, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, nil, errors.Wrap(err, "failed to ping database")
	}

	archive, err := postgres.NewRunArchiveRepository(db)
	if err != nil {
		return nil, nil, err
	}
	return archive, db, nil
}
