package model

import "time"

// ReportStatus tracks async narrative generation
type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportGenerating ReportStatus = "generating"
	ReportReady      ReportStatus = "ready"
	ReportFailed     ReportStatus = "failed"
)

// CareerRecommendation is one suggested career with the reason for it
type CareerRecommendation struct {
	Title  string `json:"title" bson:"title"`
	Reason string `json:"reason" bson:"reason"`
}

// CareerReport is the narrative produced by the report generator
type CareerReport struct {
	Summary               string                 `json:"summary" bson:"summary"`
	InterestAnalysis      string                 `json:"interest_analysis" bson:"interestAnalysis"`
	PersonalityAnalysis   string                 `json:"personality_analysis" bson:"personalityAnalysis"`
	ValuesAnalysis        string                 `json:"values_analysis" bson:"valuesAnalysis"`
	AbilityAnalysis       string                 `json:"ability_analysis" bson:"abilityAnalysis"`
	CareerRecommendations []CareerRecommendation `json:"career_recommendations" bson:"careerRecommendations"`
	DevelopmentAdvice     string                 `json:"development_advice" bson:"developmentAdvice"`
	ClosingMessage        string                 `json:"closing_message" bson:"closingMessage"`
}

// ReportRecord is the stored state of a user's report
type ReportRecord struct {
	UserID    string        `json:"userId" bson:"userId"`
	SessionID string        `json:"sessionId" bson:"sessionId"`
	Status    ReportStatus  `json:"status" bson:"status"`
	Report    *CareerReport `json:"report,omitempty" bson:"report,omitempty"`
	Fallback  bool          `json:"fallback,omitempty" bson:"fallback,omitempty"` // Report is the built-in default
	Error     string        `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	ReadyAt   *time.Time    `json:"readyAt,omitempty" bson:"readyAt,omitempty"`
}
