package postgres

import (
	"context"
	"fmt"

	"nutrimatch/domain"

	"gorm.io/gorm"
)

type RecommendationLogRepository struct {
	DB *gorm.DB
}

func NewRecommendationLogRepository(db *gorm.DB) *RecommendationLogRepository {
	return &RecommendationLogRepository{DB: db}
}

// SaveLogs inserts one row per served recommendation in a single batch.
func (r *RecommendationLogRepository) SaveLogs(ctx context.Context, logs []domain.RecommendationLog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(logs) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&logs).Error; err != nil {
		return fmt.Errorf("failed to save recommendation logs: %w", err)
	}

	return nil
}
