package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dberzins/snippetflow/internal/common"
	"github.com/dberzins/snippetflow/internal/server/models"
	"github.com/dberzins/snippetflow/internal/server/repositories/repomanager"
)

// SnippetService implements the snippet state transitions: create, lookup,
// list, like, dislike, save. No caller-identity check is performed on any of
// them; any caller may create a snippet as any user_id and vote repeatedly.
type SnippetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSnippetService(db *sql.DB, m repomanager.RepositoryManager) *SnippetService {
	return &SnippetService{db: db, repomanager: m}
}

// Create stores a new snippet owned by userID and returns it with likes=0,
// dislikes=0, saved=false and the store-assigned id and creation time.
func (s *SnippetService) Create(ctx context.Context, title, content, language string, userID int64) (*models.Snippet, error) {
	repo := s.repomanager.Snippets(s.db)

	snippet := &models.Snippet{Title: title, Content: content, Language: language, UserID: userID}
	created, err := repo.Create(ctx, snippet)
	if err != nil {
		return nil, fmt.Errorf("error creating snippet: %w", err)
	}
	return created, nil
}

// GetByID looks a snippet up by id. Absence is a valid outcome, not an error:
// both return values are nil when no such snippet exists.
func (s *SnippetService) GetByID(ctx context.Context, id int64) (*models.Snippet, error) {
	repo := s.repomanager.Snippets(s.db)

	snippet, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading snippet: %w", err)
	}
	return snippet, nil
}

// ListAll returns every snippet in insertion order. No pagination.
func (s *SnippetService) ListAll(ctx context.Context) ([]*models.Snippet, error) {
	repo := s.repomanager.Snippets(s.db)

	list, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing snippets: %w", err)
	}
	return list, nil
}

// Like increments the like counter by exactly one and returns the
// post-increment record. Repeated calls keep incrementing; there is no
// unlike. common.ErrorNotFound when the snippet does not exist.
func (s *SnippetService) Like(ctx context.Context, id int64) (*models.Snippet, error) {
	return s.mutate(ctx, id, "liking", s.repomanager.Snippets(s.db).IncrementLikes)
}

// Dislike is symmetric to Like for the dislike counter.
func (s *SnippetService) Dislike(ctx context.Context, id int64) (*models.Snippet, error) {
	return s.mutate(ctx, id, "disliking", s.repomanager.Snippets(s.db).IncrementDislikes)
}

// Save sets the saved flag unconditionally; a second call is a no-op, not an
// error. There is no unsave. common.ErrorNotFound when the snippet does not
// exist.
func (s *SnippetService) Save(ctx context.Context, id int64) (*models.Snippet, error) {
	return s.mutate(ctx, id, "saving", s.repomanager.Snippets(s.db).MarkSaved)
}

func (s *SnippetService) mutate(ctx context.Context, id int64, verb string, op func(context.Context, int64) (*models.Snippet, error)) (*models.Snippet, error) {
	snippet, err := op(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error %s snippet: %w", verb, err)
	}
	return snippet, nil
}
