// backend/src/database/database.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/username/celuventas/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens the sqlite record store. WAL keeps readers from blocking
// the single writer; the connection cap matters because sqlite only
// allows one writer at a time.
func InitDB(databasePath string) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)", databasePath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		stdlog.Fatalf("opening record store %s: %v", databasePath, err)
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		stdlog.Fatalf("pinging record store %s: %v", databasePath, err)
	}
	DB = db
	logger.L.Info("Record store opened", "path", databasePath)
}

// RunMigrations brings the schema up to date. migrationsPath may be
// relative (resolved against the working directory, the dev case) or
// absolute (the container case, set via MIGRATIONS_PATH).
func RunMigrations(databasePath, migrationsPath string) {
	if DB == nil {
		stdlog.Fatal("RunMigrations called before InitDB")
	}

	driver, err := sqlite.WithInstance(DB, &sqlite.Config{})
	if err != nil {
		stdlog.Fatalf("creating sqlite migration driver: %v", err)
	}

	if !filepath.IsAbs(migrationsPath) {
		cwd, err := os.Getwd()
		if err != nil {
			stdlog.Fatalf("resolving migrations path: %v", err)
		}
		migrationsPath = filepath.Join(cwd, migrationsPath)
	}
	sourceURL := "file://" + filepath.ToSlash(migrationsPath)

	m, err := migrate.NewWithDatabaseInstance(sourceURL, databasePath, driver)
	if err != nil {
		logger.L.Error("Migration setup failed", "source", sourceURL, "error", err)
		stdlog.Fatalf("migration setup failed: %v", err)
	}

	logger.L.Info("Applying schema migrations", "source", sourceURL)
	switch err = m.Up(); {
	case err == nil:
		logger.L.Info("Schema is up to date after applying migrations")
	case errors.Is(err, migrate.ErrNoChange):
		logger.L.Info("Schema already up to date")
	default:
		logger.L.Error("Migration failed", "error", err)
		stdlog.Fatalf("migration failed: %v", err)
	}
}
