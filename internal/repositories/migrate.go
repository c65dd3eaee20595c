package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Usernames use a binary collation so lookups and the unique index compare
// exact bytes instead of ignoring case and accents.
const mysqlUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

const postgresUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`

// Migrate creates the users table for the driver db was opened with.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var stmt string
	switch db.DriverName() {
	case "mysql":
		stmt = mysqlUsersTable
	case "pgx", "postgres":
		stmt = postgresUsersTable
	default:
		return fmt.Errorf("unsupported driver: %s", db.DriverName())
	}

	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}
