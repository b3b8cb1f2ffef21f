package domain

import (
	"time"

	"gorm.io/datatypes"
)

// InteractionType is the closed set of logged user actions.
type InteractionType string

const (
	InteractionView      InteractionType = "view"
	InteractionRecommend InteractionType = "recommend"
	InteractionSelect    InteractionType = "select"
	InteractionLike      InteractionType = "like"
)

// unknownInteractionWeight is used for values outside the closed set so
// internally generated events can never fail to record.
const unknownInteractionWeight = 0.1

var interactionWeights = map[InteractionType]float64{
	InteractionView:      0.2,
	InteractionRecommend: 0.5,
	InteractionSelect:    0.7,
	InteractionLike:      1.0,
}

// Weight returns the fixed signal weight for the interaction type.
func (t InteractionType) Weight() float64 {
	if w, ok := interactionWeights[t]; ok {
		return w
	}
	return unknownInteractionWeight
}

// Valid reports whether t is one of the four known interaction types.
func (t InteractionType) Valid() bool {
	_, ok := interactionWeights[t]
	return ok
}

// InteractionEvent is one append-only row of the interaction log. Events are
// never mutated or deleted; duplicates are acceptable and never deduplicated.
type InteractionEvent struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	UserID            uint              `gorm:"column:user_id;not null;index" json:"user_id"`
	FoodName          string            `gorm:"column:food_name;not null" json:"food_name"`
	InteractionType   string            `gorm:"column:interaction_type;not null" json:"interaction_type"`
	InteractionWeight float64           `gorm:"column:interaction_weight;not null" json:"interaction_weight"`
	Timestamp         time.Time         `gorm:"column:timestamp;not null" json:"timestamp"`
	Context           datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context,omitempty"`
}

func (InteractionEvent) TableName() string {
	return "user_interactions"
}

// FoodScore is an aggregate row: total interaction weight for one food.
type FoodScore struct {
	FoodName string  `json:"food_name"`
	Score    float64 `json:"score"`
}

// InteractionSummary backs the profile dashboard.
type InteractionSummary struct {
	TotalInteractions int64 `json:"total_interactions"`
	UniqueFoods       int64 `json:"unique_foods"`
}
