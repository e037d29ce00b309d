package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"recruiterconnect-backend/config"
	"recruiterconnect-backend/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Applies schema migrations. Usage:
//
//	migrate [-dir migrations] up|down|status
func main() {
	dir := flag.String("dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	migrationsDir := cfg.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	db, err := sql.Open("pgx", cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to open database", "error", err)
		return
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to configure goose: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch command {
	case "up":
		err = goose.UpContext(ctx, db, migrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, migrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, migrationsDir)
	default:
		log.Fatalf("Unknown command %q (want up, down, or status)", command)
	}
	if err != nil {
		log.Fatalf("Migration %s failed: %v", command, err)
	}

	logger.Log.Info("Migration command finished", "command", command, "dir", migrationsDir)
}
