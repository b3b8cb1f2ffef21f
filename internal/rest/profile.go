package rest

import (
	"net/http"
	"strconv"

	"nutrimatch/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	recommenderService RecommenderService
	interactionService InteractionService
}

func NewProfileHandler(recSvc RecommenderService, intSvc InteractionService) *ProfileHandler {
	return &ProfileHandler{
		recommenderService: recSvc,
		interactionService: intSvc,
	}
}

// GET /api/v1/profile/preferences
func (h *ProfileHandler) Preferences(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	prefs, err := h.recommenderService.NutrientPreferences(c.Request().Context(), userID)
	if err != nil {
		logger.Error("preferences failed", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	// prefs is nil for users without history; the client treats null as
	// "no profile yet"
	return c.JSON(http.StatusOK, fres.Response.StatusOK(prefs))
}

// GET /api/v1/profile/summary
func (h *ProfileHandler) Summary(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	summary, err := h.interactionService.Summary(c.Request().Context(), userID)
	if err != nil {
		logger.Error("summary failed", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}

// GET /api/v1/profile/top-snacks?limit=5
func (h *ProfileHandler) TopSnacks(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	limit := queryInt(c, "limit", 5)

	foods, err := h.interactionService.TopFoods(c.Request().Context(), userID, limit)
	if err != nil {
		logger.Error("top snacks failed", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(foods))
}

// GET /api/v1/profile/activity?limit=5
func (h *ProfileHandler) RecentActivity(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	limit := queryInt(c, "limit", 5)

	events, err := h.interactionService.RecentActivity(c.Request().Context(), userID, limit)
	if err != nil {
		logger.Error("recent activity failed", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

func queryInt(c echo.Context, name string, defaultVal int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultVal
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return defaultVal
	}

	return v
}
