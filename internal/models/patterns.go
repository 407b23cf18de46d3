package models

import "time"

// The detector outputs below are produced by external services; the backend only
// forwards them.

// EmotionalCycle is a recurring mood cycle found by the cycle detector.
type EmotionalCycle struct {
	ID                string     `json:"id,omitempty"`
	CycleLength       int        `json:"cycle_length"`
	PeakDay           int        `json:"peak_day"`
	ValleyDay         int        `json:"valley_day"`
	EmotionType       string     `json:"emotion_type"`
	Confidence        float64    `json:"confidence"`
	LastOccurrence    *time.Time `json:"last_occurrence,omitempty"`
	NextPredictedDate *time.Time `json:"next_predicted_date,omitempty"`
}

// PatternType enumerates detector pattern kinds.
type PatternType string

const (
	PatternTypeTrigger       PatternType = "trigger"
	PatternTypeCycle         PatternType = "cycle"
	PatternTypeThought       PatternType = "thought_pattern"
	PatternTypeCopingSuccess PatternType = "coping_success"
)

// Pattern is a trigger or thought pattern.
type Pattern struct {
	ID              string      `json:"id,omitempty"`
	UserID          string      `json:"user_id"`
	PatternType     PatternType `json:"pattern_type"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Frequency       int         `json:"frequency"`
	Strength        float64     `json:"strength"`
	TriggerWords    []string    `json:"trigger_words,omitempty"`
	AssociatedMoods []string    `json:"associated_moods,omitempty"`
	TimeOfDay       []string    `json:"time_of_day,omitempty"`
	DaysOfWeek      []int       `json:"days_of_week,omitempty"`
}

// CopingStrategy is a suggestion returned by the coping detector.
type CopingStrategy struct {
	ID                 string   `json:"id,omitempty"`
	Strategy           string   `json:"strategy"`
	Category           string   `json:"category"`
	EffectivenessScore float64  `json:"effectiveness_score"`
	TimesUsed          int      `json:"times_used"`
	AssociatedTriggers []string `json:"associated_triggers,omitempty"`
	AssociatedMoods    []string `json:"associated_moods,omitempty"`
}

// Prediction is a forecast emotional event.
type Prediction struct {
	ID             string    `json:"id,omitempty"`
	PredictionType string    `json:"prediction_type"`
	PredictedDate  time.Time `json:"predicted_date"`
	Confidence     float64   `json:"confidence"`
	Severity       string    `json:"severity"`
	BasedOn        []string  `json:"based_on,omitempty"`
	Description    string    `json:"description"`
}

// PatternDetectionSummary counts what a detection run found.
type PatternDetectionSummary struct {
	Cycles          int `json:"cycles"`
	Triggers        int `json:"triggers"`
	ThoughtPatterns int `json:"thought_patterns"`
	Total           int `json:"total"`
}

// DetectPatternsRequest optionally overrides the detection lookback window.
type DetectPatternsRequest struct {
	LookbackDays int `json:"lookback_days" binding:"omitempty,min=1,max=365"`
}

// GeneratePredictionsRequest optionally overrides the prediction horizon.
type GeneratePredictionsRequest struct {
	DaysAhead int `json:"days_ahead" binding:"omitempty,min=1,max=90"`
}
