package snippets

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dberzins/snippetflow/internal/common"
	"github.com/dberzins/snippetflow/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests.
type InMemoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	snippets map[int64]*models.Snippet
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, snippets: make(map[int64]*models.Snippet)}
}

func (r *InMemoryRepository) Create(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *snippet
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.Likes = 0
	stored.Dislikes = 0
	stored.Saved = false
	r.nextID++
	r.snippets[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*models.Snippet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.snippets[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *s
	return &out, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Snippet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Snippet, 0, len(r.snippets))
	for _, s := range r.snippets {
		out := *s
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *InMemoryRepository) IncrementLikes(ctx context.Context, id int64) (*models.Snippet, error) {
	return r.update(id, func(s *models.Snippet) { s.Likes++ })
}

func (r *InMemoryRepository) IncrementDislikes(ctx context.Context, id int64) (*models.Snippet, error) {
	return r.update(id, func(s *models.Snippet) { s.Dislikes++ })
}

func (r *InMemoryRepository) MarkSaved(ctx context.Context, id int64) (*models.Snippet, error) {
	return r.update(id, func(s *models.Snippet) { s.Saved = true })
}

func (r *InMemoryRepository) update(id int64, apply func(*models.Snippet)) (*models.Snippet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.snippets[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	apply(s)
	out := *s
	return &out, nil
}
