package users

import (
	"context"

	"github.com/dberzins/snippetflow/internal/server/models"
)

// Repository persists user records. Lookups return common.ErrorNotFound when
// no row matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
