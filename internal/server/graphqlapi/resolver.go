package graphqlapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dberzins/snippetflow/internal/common"
	"github.com/dberzins/snippetflow/internal/server/models"
	"github.com/dberzins/snippetflow/internal/server/services"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

var errSnippetNotFound = errors.New("Snippet not found")

// Resolver is the root resolver for the schema. Mutations perform no
// caller-identity check; the graph surface is as permissive as the services
// beneath it.
type Resolver struct {
	snippets        *services.SnippetService
	recommendations *services.RecommendationService
}

func NewResolver(snippets *services.SnippetService, recommendations *services.RecommendationService) *Resolver {
	return &Resolver{snippets: snippets, recommendations: recommendations}
}

// NewHandler parses the schema against the resolver and returns the HTTP
// handler to mount.
func NewHandler(snippets *services.SnippetService, recommendations *services.RecommendationService) http.Handler {
	schema := graphql.MustParseSchema(Schema, NewResolver(snippets, recommendations))
	return &relay.Handler{Schema: schema}
}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return n, nil
}

// --- queries ---

func (r *Resolver) Snippet(ctx context.Context, args struct{ ID graphql.ID }) (*snippetResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	snippet, err := r.snippets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snippet == nil {
		// absent is null, not a graph error
		return nil, nil
	}
	return &snippetResolver{s: snippet}, nil
}

func (r *Resolver) AllSnippets(ctx context.Context) ([]*snippetResolver, error) {
	list, err := r.snippets.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*snippetResolver, 0, len(list))
	for _, s := range list {
		resolvers = append(resolvers, &snippetResolver{s: s})
	}
	return resolvers, nil
}

func (r *Resolver) RecommendationsForUser(ctx context.Context, args struct{ UserID graphql.ID }) ([]*recommendationResolver, error) {
	userID, err := parseID(args.UserID)
	if err != nil {
		return nil, err
	}

	recs := r.recommendations.GetRecommendations(ctx, userID)
	resolvers := make([]*recommendationResolver, 0, len(recs))
	for _, rec := range recs {
		resolvers = append(resolvers, &recommendationResolver{r: rec})
	}
	return resolvers, nil
}

// --- mutations ---

func (r *Resolver) CreateSnippet(ctx context.Context, args struct {
	Title    string
	Content  string
	Language string
	UserID   graphql.ID
}) (*snippetResolver, error) {
	userID, err := parseID(args.UserID)
	if err != nil {
		return nil, err
	}

	snippet, err := r.snippets.Create(ctx, args.Title, args.Content, args.Language, userID)
	if err != nil {
		return nil, err
	}
	return &snippetResolver{s: snippet}, nil
}

func (r *Resolver) LikeSnippet(ctx context.Context, args struct{ SnippetID graphql.ID }) (*snippetResolver, error) {
	return r.mutate(ctx, args.SnippetID, r.snippets.Like)
}

func (r *Resolver) DislikeSnippet(ctx context.Context, args struct{ SnippetID graphql.ID }) (*snippetResolver, error) {
	return r.mutate(ctx, args.SnippetID, r.snippets.Dislike)
}

func (r *Resolver) SaveSnippet(ctx context.Context, args struct{ SnippetID graphql.ID }) (*snippetResolver, error) {
	return r.mutate(ctx, args.SnippetID, r.snippets.Save)
}

func (r *Resolver) mutate(ctx context.Context, id graphql.ID, op func(context.Context, int64) (*models.Snippet, error)) (*snippetResolver, error) {
	snippetID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	snippet, err := op(ctx, snippetID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errSnippetNotFound
		}
		return nil, err
	}
	return &snippetResolver{s: snippet}, nil
}

// --- field resolvers ---

type snippetResolver struct {
	s *models.Snippet
}

func (r *snippetResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.s.ID, 10))
}
func (r *snippetResolver) Title() string    { return r.s.Title }
func (r *snippetResolver) Content() string  { return r.s.Content }
func (r *snippetResolver) Language() string { return r.s.Language }
func (r *snippetResolver) UserID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.s.UserID, 10))
}
func (r *snippetResolver) CreatedAt() string { return r.s.CreatedAt.Format(time.RFC3339) }
func (r *snippetResolver) Likes() int32      { return r.s.Likes }
func (r *snippetResolver) Dislikes() int32   { return r.s.Dislikes }
func (r *snippetResolver) Saved() bool       { return r.s.Saved }

type recommendationResolver struct {
	r models.Recommendation
}

func (r *recommendationResolver) SnippetID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.r.SnippetID, 10))
}
func (r *recommendationResolver) Score() float64 { return r.r.Score }
