package recommender

import (
	"context"
	"fmt"

	"nutrimatch/domain"
	"nutrimatch/pkg/logger"
)

const defaultTopN = 5

// ---- Repository interfaces ----

// InteractionReader is the read side of the interaction store the scorer
// depends on.
type InteractionReader interface {
	AggregateScores(ctx context.Context, userID uint) (map[string]float64, error)
	HasAnyInteraction(ctx context.Context, userID uint) (bool, error)
	EventsByUser(ctx context.Context, userID uint) ([]domain.InteractionEvent, error)
}

// RecommendationLogRepository persists served recommendations for offline
// analysis. Writes are best-effort.
type RecommendationLogRepository interface {
	SaveLogs(ctx context.Context, logs []domain.RecommendationLog) error
}

// ---- Usecase / Service ----

type Service struct {
	index        *FeatureIndex
	interactions InteractionReader
	recLogRepo   RecommendationLogRepository
}

func NewService(
	index *FeatureIndex,
	interactions InteractionReader,
	recLogRepo RecommendationLogRepository,
) *Service {
	return &Service{
		index:        index,
		interactions: interactions,
		recLogRepo:   recLogRepo,
	}
}

// IsColdStartUser reports whether the user has no interaction history at all.
// That single threshold gates every personalization decision.
func (s *Service) IsColdStartUser(ctx context.Context, userID uint) (bool, error) {
	has, err := s.interactions.HasAnyInteraction(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check interaction history: %w", err)
	}
	return !has, nil
}

// Recommend returns up to topN healthier alternatives for the selected food.
//
// A user with zero logged interactions gets the cold-start ranking regardless
// of the selected food (the cold-start check deliberately runs before the
// food lookup). Otherwise the hybrid scorer blends content similarity,
// normalized health score and the user's rescaled interaction signal. A zero
// userID means anonymous: the interaction term is zero for every candidate.
func (s *Service) Recommend(
	ctx context.Context,
	selectedFood string,
	userID uint,
	topN int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if topN <= 0 {
		topN = defaultTopN
	}

	tid := TraceIDFromContext(ctx)

	if userID != 0 {
		coldStart, err := s.IsColdStartUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if coldStart {
			logger.Debug("recommend_cold_start",
				"trace_id", tid,
				"user_id", userID,
				"selected_food", selectedFood,
				"top_n", topN,
			)
			ColdStartServedTotal.Inc()

			recs := coldStartRecommendations(s.index, topN)
			s.annotate(recs, selectedFood, nil)
			return recs, nil
		}
	}

	sims, err := s.index.Similarity(selectedFood)
	if err != nil {
		return nil, err
	}
	queryIdx, _ := s.index.Lookup(selectedFood)

	interactionScores := map[string]float64{}
	if userID != 0 {
		interactionScores, err = s.interactions.AggregateScores(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load interaction scores: %w", err)
		}
	}

	recs := rankCandidates(s.index, queryIdx, sims, interactionScores, topN)

	var prefs *domain.NutrientPreferences
	if userID != 0 {
		prefs, err = s.NutrientPreferences(ctx, userID)
		if err != nil {
			// explanation enrichment only; the ranking stands without it
			logger.Warn("nutrient_preferences_unavailable",
				"trace_id", tid,
				"user_id", userID,
				"error", err,
			)
			prefs = nil
		}
	}

	s.annotate(recs, selectedFood, prefs)

	logger.Debug("recommend_hybrid",
		"trace_id", tid,
		"user_id", userID,
		"selected_food", selectedFood,
		"top_n", topN,
		"candidates", s.index.Len()-1,
		"returned", len(recs),
	)

	if userID != 0 && s.recLogRepo != nil {
		s.persistLogs(ctx, userID, selectedFood, recs)
	}

	return recs, nil
}

// annotate fills each recommendation's Reason relative to the selected food.
// On the cold-start path the selected food may not exist in the index; the
// reason is left empty then.
func (s *Service) annotate(recs []domain.Recommendation, selectedFood string, prefs *domain.NutrientPreferences) {
	idx, ok := s.index.Lookup(selectedFood)
	if !ok {
		return
	}
	selected := s.index.Food(idx)

	for i := range recs {
		recs[i].Reason = ExplainRecommendation(selected, recs[i].Food, prefs)
	}
}

// persistLogs writes the served ranking to recommendation_logs. Failures are
// logged and never surfaced: serving the user always wins over bookkeeping.
func (s *Service) persistLogs(ctx context.Context, userID uint, selectedFood string, recs []domain.Recommendation) {
	if len(recs) == 0 {
		return
	}

	logs := make([]domain.RecommendationLog, 0, len(recs))
	for _, rec := range recs {
		logs = append(logs, domain.RecommendationLog{
			UserID:           userID,
			SelectedFood:     domain.CanonicalFoodName(selectedFood),
			RecommendedFood:  rec.Food.Food,
			Similarity:       rec.Similarity,
			InteractionScore: rec.InteractionScore,
			HybridScore:      rec.HybridScore,
			Confidence:       rec.Confidence,
		})
	}

	if err := s.recLogRepo.SaveLogs(ctx, logs); err != nil {
		logger.Warn("recommendation_log_failed",
			"trace_id", TraceIDFromContext(ctx),
			"user_id", userID,
			"error", err,
		)
	}
}
