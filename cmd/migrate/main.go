package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"gestdoc/internal/config"
)

const usage = "Usage: migrate [up|down|steps N|version]"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: loading config: %v", err)
	}

	m, err := migrate.New("file://db/migrations", cfg.DB.DSN())
	if err != nil {
		log.Fatalf("migrate: opening migration source: %v", err)
	}
	defer m.Close()

	if err := run(m, os.Args[1:]); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	logVersion(m)
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); errors.Is(err, migrate.ErrNoChange) {
			log.Println("migrate: schema already current")
		} else if err != nil {
			return fmt.Errorf("up: %w", err)
		}

	case "down":
		if err := m.Down(); errors.Is(err, migrate.ErrNoChange) {
			log.Println("migrate: nothing to revert")
		} else if err != nil {
			return fmt.Errorf("down: %w", err)
		}

	case "steps":
		if len(args) < 2 {
			return errors.New("steps requires a number argument")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid steps argument: %w", err)
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("steps: %w", err)
		}

	case "version":
		// logVersion on the way out prints it.

	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	return nil
}

func logVersion(m *migrate.Migrate) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Println("migrate: schema at version none (no migrations applied)")
		return
	}
	if err != nil {
		log.Fatalf("migrate: reading schema version: %v", err)
	}
	if dirty {
		log.Printf("migrate: schema at version %d (DIRTY - resolve before deploying)", version)
		return
	}
	log.Printf("migrate: schema at version %d", version)
}
