package main

import (
	"errors"
	"fmt"
	"os"

	"expediente-admin/config"
	"expediente-admin/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

// migrationLogger adapts logrus to migrate.Logger.
type migrationLogger struct {
	log     *logrus.Logger
	verbose bool
}

func (l *migrationLogger) Printf(format string, v ...any) {
	l.log.Infof(format, v...)
}

func (l *migrationLogger) Verbose() bool {
	return l.verbose
}

func main() {
	direction := pflag.StringP("direction", "d", directionUp, "migration direction: up or down")
	steps := pflag.IntP("steps", "n", 0, "number of migrations to apply, 0 applies all")
	verbose := pflag.BoolP("verbose", "v", false, "log every migration step")
	pflag.Parse()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(cfg.DB.MigrationURL(), *direction, *steps, &migrationLogger{log: log, verbose: *verbose}); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to apply")
			return
		}
		log.Fatalf("Failed to migrate: %v", err)
	}
	log.Infof("Migrations applied (%s)", *direction)
}

func run(databaseURL, direction string, steps int, logger migrate.Logger) error {
	if direction != directionUp && direction != directionDown {
		return fmt.Errorf("unknown direction %q", direction)
	}
	if steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", steps)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()
	m.Log = logger

	switch {
	case steps != 0 && direction == directionDown:
		return m.Steps(-steps)
	case steps != 0 && direction == directionUp:
		return m.Steps(steps)
	case direction == directionDown:
		return m.Down()
	default:
		return m.Up()
	}
}
