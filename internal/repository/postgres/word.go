package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"wordtrainer/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sqlx.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db}
}

const userWordColumns = `id, user_id, target_text, translated_text, created_at`

// SeedSharedWords upserts the shared dictionary in one transaction.
// An existing entry gets the translation from the seed list.
func (r *WordRepo) SeedSharedWords(ctx context.Context, pairs []domain.WordPair) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO words (target_text, translated_text)
		VALUES ($1, $2)
		ON CONFLICT ((LOWER(target_text)))
		DO UPDATE SET translated_text = EXCLUDED.translated_text
	`
	for _, p := range pairs {
		if _, err := tx.ExecContext(ctx, query, p.Target, p.Translation); err != nil {
			return fmt.Errorf("seed %q: %w", p.Target, mapError(err))
		}
	}

	return mapError(tx.Commit())
}

// WordExists checks the shared dictionary and the user's personal one
func (r *WordRepo) WordExists(ctx context.Context, userID int64, target string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM words WHERE LOWER(target_text) = LOWER($2)
			UNION ALL
			SELECT 1 FROM user_words WHERE user_id = $1 AND LOWER(target_text) = LOWER($2)
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, target); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

// AddPersonalWord inserts a personal word; an existing one is returned unchanged
func (r *WordRepo) AddPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, mapError(err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO user_words (user_id, target_text, translated_text)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, (LOWER(target_text))) DO NOTHING
		RETURNING ` + userWordColumns

	var w domain.UserWord
	created := true
	err = tx.GetContext(ctx, &w, insert, userID, target, translation)
	if errors.Is(err, sql.ErrNoRows) {
		// Conflict: read the row that won
		created = false
		selectExisting := `
			SELECT ` + userWordColumns + `
			FROM user_words
			WHERE user_id = $1 AND LOWER(target_text) = LOWER($2)
		`
		err = tx.GetContext(ctx, &w, selectExisting, userID, target)
	}
	if err != nil {
		return nil, false, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, mapError(err)
	}
	return &w, created, nil
}

// UpsertPersonalWord inserts a personal word or overwrites its translation
func (r *WordRepo) UpsertPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, error) {
	query := `
		INSERT INTO user_words (user_id, target_text, translated_text)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, (LOWER(target_text)))
		DO UPDATE SET translated_text = EXCLUDED.translated_text
		RETURNING ` + userWordColumns

	var w domain.UserWord
	if err := r.db.GetContext(ctx, &w, query, userID, target, translation); err != nil {
		return nil, mapError(err)
	}
	return &w, nil
}

// DeletePersonalWord removes a personal word. Shared words are never touched.
func (r *WordRepo) DeletePersonalWord(ctx context.Context, userID int64, target string) (*domain.UserWord, error) {
	query := `
		DELETE FROM user_words
		WHERE user_id = $1 AND LOWER(target_text) = LOWER($2)
		RETURNING ` + userWordColumns

	var w domain.UserWord
	err := r.db.GetContext(ctx, &w, query, userID, target)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &w, nil
}

// ListRandomWords draws up to limit distinct words from the shared dictionary and the
// user's own words. A personal entry hides the shared one with the same target.
func (r *WordRepo) ListRandomWords(ctx context.Context, userID int64, limit int) ([]domain.WordPair, error) {
	query := `
		SELECT target_text, translated_text
		FROM (
			SELECT DISTINCT ON (LOWER(target_text)) target_text, translated_text, priority
			FROM (
				SELECT target_text, translated_text, 0 AS priority
				FROM user_words
				WHERE user_id = $1
				UNION ALL
				SELECT target_text, translated_text, 1 AS priority
				FROM words
			) AS candidates
			ORDER BY LOWER(target_text), priority
		) AS merged
		ORDER BY RANDOM()
		LIMIT $2
	`

	var pairs []domain.WordPair
	if err := r.db.SelectContext(ctx, &pairs, query, userID, limit); err != nil {
		return nil, mapError(err)
	}
	return pairs, nil
}
