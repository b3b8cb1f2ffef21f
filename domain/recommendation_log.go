package domain

import "time"

// RecommendationLog records one served recommendation for offline analysis.
// Written best-effort after a personalized ranking; never read on the hot path.
type RecommendationLog struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	SelectedFood     string    `gorm:"column:selected_food;not null" json:"selected_food"`
	RecommendedFood  string    `gorm:"column:recommended_food;not null" json:"recommended_food"`
	Similarity       float64   `gorm:"column:similarity" json:"similarity"`
	InteractionScore float64   `gorm:"column:interaction_score" json:"interaction_score"`
	HybridScore      float64   `gorm:"column:hybrid_score" json:"hybrid_score"`
	Confidence       float64   `gorm:"column:confidence" json:"confidence"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationLog) TableName() string {
	return "recommendation_logs"
}
