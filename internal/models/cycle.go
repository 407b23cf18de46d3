package models

import "time"

// Phase is one of the four segments of the menstrual cycle.
type Phase string

const (
	PhaseMenstruation Phase = "menstruation"
	PhaseFollicular   Phase = "follicular"
	PhaseOvulation    Phase = "ovulation"
	PhaseLuteal       Phase = "luteal"

	// PhaseUnknown is returned when no cycle start is known. It is never a bucket.
	PhaseUnknown Phase = "unknown"
)

// Phases lists the phases in cycle order. Iteration over phases always uses this order.
var Phases = []Phase{PhaseMenstruation, PhaseFollicular, PhaseOvulation, PhaseLuteal}

const (
	DefaultCycleLength  = 28
	DefaultOvulationDay = 14
	MaxCycleLength      = 90
)

// CycleInterval is one logged period in the cycle history.
type CycleInterval struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Length    int       `json:"length"`
}

// CycleProfile is the per-user cycle tracking record.
type CycleProfile struct {
	ID                  string                     `json:"id,omitempty"`
	UserID              string                     `json:"user_id"`
	IsTracking          bool                       `json:"is_tracking"`
	AverageCycleLength  int                        `json:"average_cycle_length"`
	LastPeriodStart     *time.Time                 `json:"last_period_start,omitempty"`
	NextPredictedPeriod *time.Time                 `json:"next_predicted_period,omitempty"`
	CycleHistory        []CycleInterval            `json:"cycle_history"`
	OvulationDay        int                        `json:"ovulation_day"`
	MoodCorrelations    map[Phase]PhaseCorrelation `json:"mood_correlations,omitempty"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// CycleLength returns the average cycle length, falling back to the default for unset rows.
func (p *CycleProfile) CycleLength() int {
	if p.AverageCycleLength < 1 {
		return DefaultCycleLength
	}
	return p.AverageCycleLength
}

// MoodCount is a mood label with its number of occurrences.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// PhaseCorrelation holds the sentiment statistics of one phase.
type PhaseCorrelation struct {
	AverageSentiment float64     `json:"average_sentiment"`
	EntriesCount     int         `json:"entries_count"`
	CommonMoods      []MoodCount `json:"common_moods"`
	Intensity        float64     `json:"intensity"`
}

// CorrelationInsightType distinguishes the two phase insights.
type CorrelationInsightType string

const (
	InsightChallengingPhase CorrelationInsightType = "challenging_phase"
	InsightPositivePhase    CorrelationInsightType = "positive_phase"
)

// CorrelationInsight is a templated observation naming a phase.
type CorrelationInsight struct {
	Type    CorrelationInsightType `json:"type"`
	Phase   Phase                  `json:"phase"`
	Message string                 `json:"message"`
}

// CorrelationResult is the phase/mood correlation snapshot.
type CorrelationResult struct {
	Correlations map[Phase]PhaseCorrelation `json:"correlations"`
	Insights     []CorrelationInsight       `json:"insights"`
}

// PhaseInfo describes where today falls in the user's cycle.
type PhaseInfo struct {
	Phase               Phase      `json:"phase"`
	CycleDay            int        `json:"cycle_day,omitempty"`
	Description         string     `json:"description,omitempty"`
	ExpectedMood        string     `json:"expected_mood,omitempty"`
	NextPeriod          *time.Time `json:"next_period,omitempty"`
	DaysUntilNextPeriod int        `json:"days_until_next_period"`
}

// EnableTrackingRequest turns on cycle tracking.
type EnableTrackingRequest struct {
	CycleLength     *int       `json:"cycle_length" binding:"omitempty,min=1,max=90"`
	LastPeriodStart *time.Time `json:"last_period_start"`
}

// LogPeriodRequest carries an optional date; the server clock is used when absent.
type LogPeriodRequest struct {
	Date *time.Time `json:"date"`
}

// CyclePreferencesRequest updates cycle preferences.
type CyclePreferencesRequest struct {
	AverageCycleLength *int `json:"average_cycle_length" binding:"omitempty,min=1,max=90"`
	OvulationDay       *int `json:"ovulation_day" binding:"omitempty,min=1,max=90"`
}
