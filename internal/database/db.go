// Package database provides database connection management and schema
// bootstrap.
package database

import (
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/xdrxdrxd/wordlab/internal/config"
	"github.com/xdrxdrxd/wordlab/schemas"
)

// Open opens a database connection for the configured driver. The
// sqlite driver also bootstraps the schema, so a fresh database file is
// immediately usable.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return openSQLite(cfg)
	case "mysql":
		return openMySQL(cfg)
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func openSQLite(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	path := cfg.Path
	if path == "" {
		path = "wordlab.db"
	}

	db, err := sqlx.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	// go-sqlite3 serializes writes; a second connection only buys
	// "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec(schema) > %w", err)
	}
	return db, nil
}

func openMySQL(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}

	db, err := sqlx.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	if cfg.Migrate {
		if err := Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("Migrate() > %w", err)
		}
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Migrate applies the embedded MySQL migration files in name order.
// Every statement uses IF NOT EXISTS so reapplying is safe.
func Migrate(db *sqlx.DB) error {
	entries, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob(migrations) > %w", err)
	}
	sort.Strings(entries)
	for _, name := range entries {
		content, err := schemas.Migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("Migrations.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("db.Exec(%s) > %w", name, err)
		}
	}
	return nil
}

// schema is applied on every sqlite open. The mysql schema lives in
// schemas/ and is applied by Migrate.
const schema = `
CREATE TABLE IF NOT EXISTS words (
	word TEXT PRIMARY KEY,
	frequency_rank INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS memory_records (
	word TEXT PRIMARY KEY REFERENCES words(word),
	state TEXT NOT NULL DEFAULT 'new',
	interval_days INTEGER NOT NULL DEFAULT 0,
	ease REAL NOT NULL DEFAULT 0,
	due_at TIMESTAMP NOT NULL,
	lapse_count INTEGER NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	learning_streak INTEGER NOT NULL DEFAULT 0,
	prelapse_interval_days INTEGER NOT NULL DEFAULT 0,
	last_reviewed_at TIMESTAMP,
	mastered INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS review_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	response TEXT NOT NULL,
	reviewed_at TIMESTAMP NOT NULL,
	from_state TEXT NOT NULL,
	to_state TEXT NOT NULL,
	interval_days INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_review_events_reviewed_at ON review_events(reviewed_at);

CREATE TABLE IF NOT EXISTS enrichments (
	word TEXT NOT NULL,
	language TEXT NOT NULL,
	translation TEXT NOT NULL DEFAULT '',
	example_sentence TEXT NOT NULL DEFAULT '',
	example_translation TEXT NOT NULL DEFAULT '',
	part_of_speech TEXT NOT NULL DEFAULT '',
	fetch_attempts INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (word, language)
);
`
