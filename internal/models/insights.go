package models

import "time"

// Overview is the dashboard payload.
type Overview struct {
	TotalEntries     int64       `json:"total_entries"`
	EntriesThisMonth int64       `json:"entries_this_month"`
	PatternsDetected int64       `json:"patterns_detected"`
	AverageSentiment float64     `json:"average_sentiment"`
	MoodDistribution []MoodCount `json:"mood_distribution"`
	JournalingStreak int         `json:"journaling_streak"`
}

// DayHighlight points at the best or worst entry of a report.
type DayHighlight struct {
	EntryID   string    `json:"entry_id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Sentiment *float64  `json:"sentiment"`
}

// EmotionCount is an emotion label with its number of occurrences.
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// WeeklyReport summarises the last 7 days.
type WeeklyReport struct {
	Period           string         `json:"period"`
	TotalEntries     int            `json:"total_entries"`
	AverageSentiment float64        `json:"average_sentiment"`
	BestDay          DayHighlight   `json:"best_day"`
	WorstDay         DayHighlight   `json:"worst_day"`
	TopEmotions      []EmotionCount `json:"top_emotions"`
	Insights         []string       `json:"insights"`
}

// WeekBucket is one 7-day slice of a monthly report.
type WeekBucket struct {
	Week             string  `json:"week"`
	Entries          int     `json:"entries"`
	AverageSentiment float64 `json:"average_sentiment"`
	NoEntries        bool    `json:"no_entries"`
}

// MonthlyReport summarises the last 30 days in four buckets.
type MonthlyReport struct {
	Period          string       `json:"period"`
	TotalEntries    int          `json:"total_entries"`
	WeeklyBreakdown []WeekBucket `json:"weekly_breakdown"`
}

// SimilarEntry is an entry ranked against a target entry.
type SimilarEntry struct {
	Entry
	Similarity float64 `json:"similarity"`
}

// KeywordCount is one word of the keyword cloud.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// JourneyPoint is one step of the emotional journey.
type JourneyPoint struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Title          string    `json:"title"`
	Sentiment      float64   `json:"sentiment"`
	Emotion        *string   `json:"emotion,omitempty"`
	Mood           *string   `json:"mood,omitempty"`
	SequenceNumber int       `json:"sequence_number"`
}

// MoodTrendPoint is one entry on the mood trend line.
type MoodTrendPoint struct {
	Date      time.Time `json:"date"`
	Sentiment float64   `json:"sentiment"`
	Mood      *string   `json:"mood,omitempty"`
	Emotion   *string   `json:"emotion,omitempty"`
}
