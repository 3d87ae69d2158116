package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dberzins/snippetflow/internal/common"
	snippetsrepo "github.com/dberzins/snippetflow/internal/server/repositories/snippets"
)

func newSnippetService(t *testing.T) *SnippetService {
	t.Helper()
	rm := &fakeRepoManager{s: snippetsrepo.NewInMemoryRepository()}
	return NewSnippetService(nil, rm)
}

func TestCreate_ReturnsFreshRecord(t *testing.T) {
	s := newSnippetService(t)

	created, err := s.Create(context.Background(), "t", "print(1)", "python", 1)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a store-assigned id, got %+v", created)
	}
	if created.Likes != 0 || created.Dislikes != 0 || created.Saved {
		t.Fatalf("fresh snippet must have zero counters and saved=false: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("created_at must be set at creation")
	}
}

func TestGetByID_AbsentIsNotAnError(t *testing.T) {
	s := newSnippetService(t)

	got, err := s.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetByID must not error on absence, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil snippet, got %+v", got)
	}
}

func TestListAll_InsertionOrder(t *testing.T) {
	s := newSnippetService(t)
	ctx := context.Background()

	first, _ := s.Create(ctx, "a", "x", "go", 1)
	second, _ := s.Create(ctx, "b", "y", "python", 1)

	list, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestLike_SequentialCallsKeepIncrementing(t *testing.T) {
	s := newSnippetService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "t", "c", "go", 1)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	const n = 5
	var last int32
	for i := 0; i < n; i++ {
		got, err := s.Like(ctx, created.ID)
		if err != nil {
			t.Fatalf("Like #%d error: %v", i+1, err)
		}
		last = got.Likes
	}
	if last != n {
		t.Fatalf("likes after %d calls: got %d", n, last)
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Likes != n || got.Dislikes != 0 {
		t.Fatalf("expected likes=%d dislikes=0, got %+v", n, got)
	}
}

func TestDislike_IncrementsOnlyDislikes(t *testing.T) {
	s := newSnippetService(t)
	ctx := context.Background()

	created, _ := s.Create(ctx, "t", "c", "go", 1)

	got, err := s.Dislike(ctx, created.ID)
	if err != nil {
		t.Fatalf("Dislike error: %v", err)
	}
	if got.Dislikes != 1 || got.Likes != 0 {
		t.Fatalf("expected dislikes=1 likes=0, got %+v", got)
	}
}

func TestSave_Idempotent(t *testing.T) {
	s := newSnippetService(t)
	ctx := context.Background()

	created, _ := s.Create(ctx, "t", "c", "go", 1)

	first, err := s.Save(ctx, created.ID)
	if err != nil {
		t.Fatalf("first Save error: %v", err)
	}
	second, err := s.Save(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Save must not error: %v", err)
	}
	if !first.Saved || !second.Saved {
		t.Fatalf("expected saved=true after both calls: %+v, %+v", first, second)
	}
}

func TestMutations_NotFound(t *testing.T) {
	s := newSnippetService(t)
	ctx := context.Background()

	if _, err := s.Like(ctx, 99); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("Like: want common.ErrorNotFound, got %v", err)
	}
	if _, err := s.Dislike(ctx, 99); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("Dislike: want common.ErrorNotFound, got %v", err)
	}
	if _, err := s.Save(ctx, 99); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("Save: want common.ErrorNotFound, got %v", err)
	}
}
