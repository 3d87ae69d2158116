package snippets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dberzins/snippetflow/internal/common"
	"github.com/dberzins/snippetflow/internal/dbx"
	"github.com/dberzins/snippetflow/internal/server/models"
)

const snippetColumns = "id, title, content, language, user_id, created_at, likes, dislikes, saved"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error) {

	query :=
		`INSERT INTO snippets (title, content, language, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, likes, dislikes, saved
		 `

	err := r.db.QueryRowContext(ctx, query,
		snippet.Title, snippet.Content, snippet.Language, snippet.UserID).
		Scan(&snippet.ID, &snippet.CreatedAt, &snippet.Likes, &snippet.Dislikes, &snippet.Saved)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return snippet, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Snippet, error) {
	query :=
		`SELECT ` + snippetColumns + ` FROM snippets
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Snippet, error) {
	query :=
		`SELECT ` + snippetColumns + ` FROM snippets
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Snippet
	for rows.Next() {
		s := &models.Snippet{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Content, &s.Language, &s.UserID,
			&s.CreatedAt, &s.Likes, &s.Dislikes, &s.Saved); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// IncrementLikes bumps the like counter by exactly one in a single UPDATE so
// the store serializes concurrent calls, and returns the post-increment row.
func (r *PostgresRepository) IncrementLikes(ctx context.Context, id int64) (*models.Snippet, error) {
	query :=
		`UPDATE snippets SET likes = likes + 1
		 WHERE id = $1
		 RETURNING ` + snippetColumns + `
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) IncrementDislikes(ctx context.Context, id int64) (*models.Snippet, error) {
	query :=
		`UPDATE snippets SET dislikes = dislikes + 1
		 WHERE id = $1
		 RETURNING ` + snippetColumns + `
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// MarkSaved sets the saved flag unconditionally; repeated calls are no-ops.
func (r *PostgresRepository) MarkSaved(ctx context.Context, id int64) (*models.Snippet, error) {
	query :=
		`UPDATE snippets SET saved = true
		 WHERE id = $1
		 RETURNING ` + snippetColumns + `
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Snippet, error) {
	s := &models.Snippet{}
	err := row.Scan(&s.ID, &s.Title, &s.Content, &s.Language, &s.UserID,
		&s.CreatedAt, &s.Likes, &s.Dislikes, &s.Saved)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}
