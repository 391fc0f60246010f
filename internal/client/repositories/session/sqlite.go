package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kan-1337/movie-explorer/internal/client/models"
	"github.com/kan-1337/movie-explorer/internal/common"
)

// currentUserKey is the one storage key used for the installation's lifetime.
const currentUserKey = "current_user"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, currentUserKey, value)
	if err != nil {
		return fmt.Errorf("%w: save session: %v", common.ErrStorage, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.User, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, currentUserKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load session: %v", common.ErrStorage, err)
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &user, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, currentUserKey)
	if err != nil {
		return fmt.Errorf("%w: clear session: %v", common.ErrStorage, err)
	}
	return nil
}
