package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/migrations"
)

// Driver names accepted by [DB].
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps a database/sql handle together with the driver it was opened
// with, so query builders and error classification can stay dialect-aware
// without the repositories caring which backend is in use.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// placeholder returns the squirrel placeholder format matching the driver:
// $1-style for PostgreSQL, ?-style for SQLite.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.driver == driverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// Migrate brings the schema up to date. PostgreSQL runs the embedded goose
// migrations; SQLite bootstraps its schema inline because the local store is
// a single-file dev convenience, not a migration-managed deployment target.
func (db *DB) Migrate(ctx context.Context) error {
	if db.driver == driverPostgres {
		return migrations.Migrate(db.DB)
	}
	return bootstrapSQLite(ctx, db.DB)
}

// isUniqueViolation reports whether err is the backend's unique-constraint
// rejection, regardless of driver.
func (db *DB) isUniqueViolation(err error) bool {
	return isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err)
}
