package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// UpsertUser inserts the user or refreshes its display name, returning the internal id
func (r *UserRepo) UpsertUser(ctx context.Context, chatID int64, displayName string) (int64, error) {
	query := `
		INSERT INTO users (chat_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING id
	`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, chatID, displayName); err != nil {
		return 0, mapError(err)
	}
	return id, nil
}
