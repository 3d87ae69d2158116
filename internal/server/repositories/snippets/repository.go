package snippets

import (
	"context"

	"github.com/dberzins/snippetflow/internal/server/models"
)

// Repository persists snippet records. Lookups and single-row updates return
// common.ErrorNotFound when no row matches. The increment and save operations
// are single atomic statements; the store serializes concurrent updates.
type Repository interface {
	Create(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error)
	GetByID(ctx context.Context, id int64) (*models.Snippet, error)
	List(ctx context.Context) ([]*models.Snippet, error)
	IncrementLikes(ctx context.Context, id int64) (*models.Snippet, error)
	IncrementDislikes(ctx context.Context, id int64) (*models.Snippet, error)
	MarkSaved(ctx context.Context, id int64) (*models.Snippet, error)
}
