// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the MySQL schema files applied by database.Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
