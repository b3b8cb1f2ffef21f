package rest

import (
	"context"
	"net/http"
	"time"

	"nutrimatch/business/recommender"
	"nutrimatch/domain"
	"nutrimatch/pkg/logger"
	"nutrimatch/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const maxTopN = 20

type (
	RecommendationHandler struct {
		validate           *validator.Validate
		recommenderService RecommenderService
		interactionService InteractionService
	}

	RecommenderService interface {
		Recommend(ctx context.Context, selectedFood string, userID uint, topN int) ([]domain.Recommendation, error)
		NutrientPreferences(ctx context.Context, userID uint) (*domain.NutrientPreferences, error)
	}

	InteractionService interface {
		Log(ctx context.Context, userID uint, foodName string, interactionType domain.InteractionType, reqCtx map[string]any)
		Summary(ctx context.Context, userID uint) (domain.InteractionSummary, error)
		TopFoods(ctx context.Context, userID uint, limit int) ([]domain.FoodScore, error)
		RecentActivity(ctx context.Context, userID uint, limit int) ([]domain.InteractionEvent, error)
	}

	RecommendQuery struct {
		Food     string `query:"food" validate:"required"`
		N        int    `query:"n"`
		Platform string `query:"platform"`
	}

	InteractionRequest struct {
		FoodName        string         `json:"food_name" validate:"required"`
		InteractionType string         `json:"interaction_type" validate:"required,oneof=view recommend select like"`
		Context         map[string]any `json:"context,omitempty"`
	}
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func NewRecommendationHandler(recSvc RecommenderService, intSvc InteractionService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:           validator.New(),
		recommenderService: recSvc,
		interactionService: intSvc,
	}
}

// GET /api/v1/recommendations?food=almonds&n=5
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.N <= 0 {
		q.N = 5
	}
	if q.N > maxTopN {
		q.N = maxTopN
	}

	start := time.Now()
	ctx := c.Request().Context()

	reqCtx := map[string]any{}
	if q.Platform != "" {
		reqCtx["platform"] = q.Platform
	}

	// browsing a snack and asking for alternatives are both signal
	h.interactionService.Log(ctx, userID, q.Food, domain.InteractionView, reqCtx)
	h.interactionService.Log(ctx, userID, q.Food, domain.InteractionRecommend, reqCtx)

	recs, err := h.recommenderService.Recommend(ctx, q.Food, userID, q.N)
	if err != nil {
		if recommender.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("recommend failed", "user_id", userID, "food", q.Food, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/interactions
func (h *RecommendationHandler) LogInteraction(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req InteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	h.interactionService.Log(
		c.Request().Context(),
		userID,
		req.FoodName,
		domain.InteractionType(req.InteractionType),
		req.Context,
	)

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("interaction recorded"))
}
