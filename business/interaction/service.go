package interaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nutrimatch/domain"
	"nutrimatch/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type EventRepository interface {
	SaveEvent(ctx context.Context, event *domain.InteractionEvent) error
	AggregateScores(ctx context.Context, userID uint) ([]domain.FoodScore, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	TopFoods(ctx context.Context, userID uint, limit int) ([]domain.FoodScore, error)
	RecentActivity(ctx context.Context, userID uint, limit int) ([]domain.InteractionEvent, error)
	Summary(ctx context.Context, userID uint) (domain.InteractionSummary, error)
	EventsByUser(ctx context.Context, userID uint) ([]domain.InteractionEvent, error)
}

// ---- Usecase / Service ----

type Service struct {
	repo EventRepository
}

func NewService(repo EventRepository) *Service {
	return &Service{repo: repo}
}

// Log appends one interaction event. Fire-and-forget: invalid input (zero
// user, empty food name) and storage failures turn into a silent no-op with
// a log line, never an error back to the caller -- interaction logging must
// never interrupt the user flow. The food name is canonicalized on write so
// the log joins against the feature index without further mapping.
func (s *Service) Log(
	ctx context.Context,
	userID uint,
	foodName string,
	interactionType domain.InteractionType,
	reqCtx map[string]any,
) {
	if userID == 0 || strings.TrimSpace(foodName) == "" {
		return
	}

	event := &domain.InteractionEvent{
		UserID:            userID,
		FoodName:          domain.CanonicalFoodName(foodName),
		InteractionType:   string(interactionType),
		InteractionWeight: interactionType.Weight(),
		Timestamp:         time.Now().UTC(),
	}
	if len(reqCtx) > 0 {
		event.Context = datatypes.JSONMap(reqCtx)
	}

	if err := s.repo.SaveEvent(ctx, event); err != nil {
		logger.Warn("interaction_log_failed",
			"user_id", userID,
			"food_name", event.FoodName,
			"interaction_type", event.InteractionType,
			"error", err,
		)
		return
	}

	EventsLoggedTotal.WithLabelValues(event.InteractionType).Inc()
}

// AggregateScores returns total interaction weight per food for the user.
// Empty map when the user has no events. Recomputed from the log on every
// call; nothing is cached.
func (s *Service) AggregateScores(ctx context.Context, userID uint) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows, err := s.repo.AggregateScores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregate interaction scores: %w", err)
	}

	scores := make(map[string]float64, len(rows))
	for _, row := range rows {
		scores[domain.CanonicalFoodName(row.FoodName)] = row.Score
	}

	return scores, nil
}

// HasAnyInteraction gates cold-start behavior: any event at all counts.
func (s *Service) HasAnyInteraction(ctx context.Context, userID uint) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("count interactions: %w", err)
	}

	return count > 0, nil
}

func (s *Service) EventsByUser(ctx context.Context, userID uint) ([]domain.InteractionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.repo.EventsByUser(ctx, userID)
}

// ---- Dashboard queries ----

func (s *Service) Summary(ctx context.Context, userID uint) (domain.InteractionSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.InteractionSummary{}, fmt.Errorf("context error: %w", err)
	}

	return s.repo.Summary(ctx, userID)
}

func (s *Service) TopFoods(ctx context.Context, userID uint, limit int) ([]domain.FoodScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 5
	}

	return s.repo.TopFoods(ctx, userID, limit)
}

func (s *Service) RecentActivity(ctx context.Context, userID uint, limit int) ([]domain.InteractionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 5
	}

	return s.repo.RecentActivity(ctx, userID, limit)
}
