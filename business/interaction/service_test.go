package interaction

import (
	"context"
	"testing"
	"time"

	"nutrimatch/domain"
)

// ---- fake repository ----

type fakeEventRepo struct {
	saved   []domain.InteractionEvent
	scores  []domain.FoodScore
	count   int64
	saveErr error
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event *domain.InteractionEvent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *event)
	return nil
}

func (f *fakeEventRepo) AggregateScores(ctx context.Context, userID uint) ([]domain.FoodScore, error) {
	return f.scores, nil
}

func (f *fakeEventRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return f.count, nil
}

func (f *fakeEventRepo) TopFoods(ctx context.Context, userID uint, limit int) ([]domain.FoodScore, error) {
	if limit < len(f.scores) {
		return f.scores[:limit], nil
	}
	return f.scores, nil
}

func (f *fakeEventRepo) RecentActivity(ctx context.Context, userID uint, limit int) ([]domain.InteractionEvent, error) {
	return f.saved, nil
}

func (f *fakeEventRepo) Summary(ctx context.Context, userID uint) (domain.InteractionSummary, error) {
	return domain.InteractionSummary{TotalInteractions: int64(len(f.saved))}, nil
}

func (f *fakeEventRepo) EventsByUser(ctx context.Context, userID uint) ([]domain.InteractionEvent, error) {
	return f.saved, nil
}

// ---- tests ----

func TestLogSilentNoOpOnInvalidInput(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	svc.Log(ctx, 0, "almonds", domain.InteractionView, nil)
	svc.Log(ctx, 7, "", domain.InteractionView, nil)
	svc.Log(ctx, 7, "   ", domain.InteractionView, nil)

	if len(repo.saved) != 0 {
		t.Fatalf("expected no events recorded, got %d", len(repo.saved))
	}
}

func TestLogWeightMapping(t *testing.T) {
	cases := []struct {
		interactionType domain.InteractionType
		want            float64
	}{
		{domain.InteractionView, 0.2},
		{domain.InteractionRecommend, 0.5},
		{domain.InteractionSelect, 0.7},
		{domain.InteractionLike, 1.0},
		{domain.InteractionType("bookmark"), 0.1}, // unknown defaults safely
	}

	for _, tc := range cases {
		repo := &fakeEventRepo{}
		svc := NewService(repo)

		svc.Log(context.Background(), 7, "almonds", tc.interactionType, nil)

		if len(repo.saved) != 1 {
			t.Fatalf("%s: expected 1 event", tc.interactionType)
		}
		if got := repo.saved[0].InteractionWeight; got != tc.want {
			t.Errorf("%s: weight %v, want %v", tc.interactionType, got, tc.want)
		}
	}
}

func TestLogCanonicalizesAndTimestamps(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)

	before := time.Now().UTC()
	svc.Log(context.Background(), 7, "  Potato Chips ", domain.InteractionSelect, map[string]any{"platform": "web"})
	after := time.Now().UTC()

	ev := repo.saved[0]
	if ev.FoodName != "potato chips" {
		t.Errorf("food name %q, want canonical form", ev.FoodName)
	}
	if ev.Timestamp.Before(before) || ev.Timestamp.After(after) {
		t.Errorf("timestamp %v outside [%v, %v]", ev.Timestamp, before, after)
	}
	if ev.Context["platform"] != "web" {
		t.Errorf("request context not persisted: %v", ev.Context)
	}
}

func TestLogSwallowsRepositoryErrors(t *testing.T) {
	repo := &fakeEventRepo{saveErr: context.DeadlineExceeded}
	svc := NewService(repo)

	// must not panic or surface the failure; logging never interrupts flow
	svc.Log(context.Background(), 7, "almonds", domain.InteractionLike, nil)
}

func TestAggregateScoresCanonicalKeys(t *testing.T) {
	repo := &fakeEventRepo{scores: []domain.FoodScore{
		{FoodName: "Almonds", Score: 1.2},
		{FoodName: "apple", Score: 0.2},
	}}
	svc := NewService(repo)

	scores, err := svc.AggregateScores(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if scores["almonds"] != 1.2 {
		t.Errorf("expected canonical key lookup, got %v", scores)
	}
	if len(scores) != 2 {
		t.Errorf("expected 2 entries, got %d", len(scores))
	}
}

func TestAggregateScoresEmpty(t *testing.T) {
	svc := NewService(&fakeEventRepo{})

	scores, err := svc.AggregateScores(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("expected empty map for user without events, got %v", scores)
	}
}

func TestHasAnyInteraction(t *testing.T) {
	svc := NewService(&fakeEventRepo{count: 0})
	if got, _ := svc.HasAnyInteraction(context.Background(), 7); got {
		t.Error("expected false for zero events")
	}

	svc = NewService(&fakeEventRepo{count: 3})
	if got, _ := svc.HasAnyInteraction(context.Background(), 7); !got {
		t.Error("expected true for existing events")
	}
}

func TestInteractionTypeValid(t *testing.T) {
	for _, valid := range []domain.InteractionType{
		domain.InteractionView,
		domain.InteractionRecommend,
		domain.InteractionSelect,
		domain.InteractionLike,
	} {
		if !valid.Valid() {
			t.Errorf("%s should be valid", valid)
		}
	}

	if domain.InteractionType("purchase").Valid() {
		t.Error("unknown type should not be valid")
	}
}
