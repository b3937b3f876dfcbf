package reports

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/report"
)

// --- Mocks ---

type mockRepo struct {
	activity    []report.CommentActivity
	years       []report.YearStats
	directors   []report.DirectorStats
	lastMovieID *primitive.ObjectID
	lastLimit   int
	called      bool
}

func (m *mockRepo) CommentActivity(_ context.Context, movieID *primitive.ObjectID, limit int) ([]report.CommentActivity, error) {
	m.called = true
	m.lastMovieID = movieID
	m.lastLimit = limit
	return m.activity, nil
}

func (m *mockRepo) ByYear(_ context.Context) ([]report.YearStats, error) {
	m.called = true
	return m.years, nil
}

func (m *mockRepo) ByDirectors(_ context.Context, limit int) ([]report.DirectorStats, error) {
	m.called = true
	m.lastLimit = limit
	return m.directors, nil
}

// --- Tests ---

func TestCommentActivityDefaultsLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.CommentActivity(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("CommentActivity() error = %v", err)
	}
	if repo.lastLimit != report.CommentsDefaultLimit {
		t.Errorf("limit = %d, want %d", repo.lastLimit, report.CommentsDefaultLimit)
	}
	if repo.lastMovieID != nil {
		t.Errorf("movieID = %v, want nil", repo.lastMovieID)
	}
}

func TestCommentActivityNarrowsToMovie(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)
	id := primitive.NewObjectID()

	_, err := svc.CommentActivity(context.Background(), id.Hex(), 5)
	if err != nil {
		t.Fatalf("CommentActivity() error = %v", err)
	}
	if repo.lastMovieID == nil || *repo.lastMovieID != id {
		t.Errorf("movieID = %v, want %v", repo.lastMovieID, id)
	}
}

func TestCommentActivityRejectsMalformedMovieID(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.CommentActivity(context.Background(), "bogus", 0)
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Errorf("CommentActivity() error = %v, want ErrInvalidID", err)
	}
	if repo.called {
		t.Error("store was touched with a malformed id")
	}
}

func TestCommentActivityLimitBounds(t *testing.T) {
	svc := New(&mockRepo{})

	for _, limit := range []int{-1, report.CommentsMaxLimit + 1} {
		if _, err := svc.CommentActivity(context.Background(), "", limit); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("limit %d: error = %v, want ErrValidation", limit, err)
		}
	}
}

func TestByDirectorsLimitBounds(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	if _, err := svc.ByDirectors(context.Background(), report.DirectorsMaxLimit+1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}

	if _, err := svc.ByDirectors(context.Background(), 0); err != nil {
		t.Fatalf("ByDirectors() error = %v", err)
	}
	if repo.lastLimit != report.DirectorsDefaultLimit {
		t.Errorf("limit = %d, want %d", repo.lastLimit, report.DirectorsDefaultLimit)
	}
}
