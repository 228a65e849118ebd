package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m04kA/SMC-ReservationService/internal/config"
)

// Утилита миграций схемы. Подключение берется из того же config.toml,
// что и у сервиса, путь к миграциям и команда задаются флагами.
func main() {
	var (
		configPath     = flag.String("config", "config.toml", "Path to config file")
		migrationsPath = flag.String("migrations", "migrations", "Path to migrations directory")
		command        = flag.String("command", "up", "Command to run (up, down, version)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.Database.User),
		url.QueryEscape(cfg.Database.Password),
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	m, err := migrate.New(fmt.Sprintf("file://%s", *migrationsPath), dbURL)
	if err != nil {
		fmt.Printf("Migration init failed: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	switch *command {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			fmt.Printf("Migration up failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			fmt.Printf("Migration down failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations rolled back")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			fmt.Printf("Get version failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", version, dirty)
	default:
		fmt.Printf("Unknown command: %s\n", *command)
		os.Exit(1)
	}
}
