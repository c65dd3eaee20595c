package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/models"
)

// ErrDuplicateUsername is returned when the unique index on users.username rejects an insert.
var ErrDuplicateUsername = errors.New("username already exists")

const (
	mysqlDuplicateEntry = 1062
	pgUniqueViolation   = "23505"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with exactly this username, or nil when none exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := r.db.Rebind(`
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
		LIMIT 1
	`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.FromContext(ctx).Debugw("query",
		"sql", oneLine(query),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user in its own transaction. Any failure rolls the insert back.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
			INSERT INTO users (username, password_hash)
			VALUES (?, ?)
		`)

		res, err := tx.ExecContext(ctx, query, username, passwordHash)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}

		logger.FromContext(ctx).Debugw("query",
			"sql", oneLine(query),
			"args", []any{username},
			"result", rowsAffected,
			"error", err,
		)

		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
