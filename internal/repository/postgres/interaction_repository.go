package postgres

import (
	"context"
	"fmt"

	"nutrimatch/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

// SaveEvent appends one event. The log is append-only: this is the only
// write path, and a single-row insert is atomic, so concurrent request
// handlers sharing the store never corrupt each other's aggregates.
func (r *InteractionRepository) SaveEvent(ctx context.Context, event *domain.InteractionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save interaction event: %w", err)
	}

	return nil
}

// AggregateScores sums interaction weights per food for a user.
func (r *InteractionRepository) AggregateScores(ctx context.Context, userID uint) ([]domain.FoodScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.FoodScore
	if err := r.DB.WithContext(ctx).
		Model(&domain.InteractionEvent{}).
		Select("food_name, SUM(interaction_weight) AS score").
		Where("user_id = ?", userID).
		Group("food_name").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate interaction scores: %w", err)
	}

	return rows, nil
}

func (r *InteractionRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&domain.InteractionEvent{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}

	return count, nil
}

// TopFoods returns the user's highest-weighted foods ordered by total score.
func (r *InteractionRepository) TopFoods(ctx context.Context, userID uint, limit int) ([]domain.FoodScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 5
	}

	var rows []domain.FoodScore
	if err := r.DB.WithContext(ctx).
		Model(&domain.InteractionEvent{}).
		Select("food_name, SUM(interaction_weight) AS score").
		Where("user_id = ?", userID).
		Group("food_name").
		Order("score DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query top foods: %w", err)
	}

	return rows, nil
}

// RecentActivity returns the user's latest events, newest first.
func (r *InteractionRepository) RecentActivity(ctx context.Context, userID uint, limit int) ([]domain.InteractionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 5
	}

	var events []domain.InteractionEvent
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}

	return events, nil
}

func (r *InteractionRepository) Summary(ctx context.Context, userID uint) (domain.InteractionSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.InteractionSummary{}, fmt.Errorf("context error: %w", err)
	}

	var summary domain.InteractionSummary
	if err := r.DB.WithContext(ctx).
		Model(&domain.InteractionEvent{}).
		Select("COUNT(*) AS total_interactions, COUNT(DISTINCT food_name) AS unique_foods").
		Where("user_id = ?", userID).
		Scan(&summary).Error; err != nil {
		return domain.InteractionSummary{}, fmt.Errorf("failed to query interaction summary: %w", err)
	}

	return summary, nil
}

func (r *InteractionRepository) EventsByUser(ctx context.Context, userID uint) ([]domain.InteractionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.InteractionEvent
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query interaction events: %w", err)
	}

	return events, nil
}
