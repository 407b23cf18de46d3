package analytics

import (
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
)

const (
	KeywordCloudLimit     = 50
	MoodDistributionLimit = 5
)

// KeywordCloud ranks analyzer keywords and tags across entries. For each entry its
// keywords are counted before its tags.
func KeywordCloud(entries []models.Entry) []models.KeywordCount {
	words := make([]string, 0, len(entries)*4)
	for i := range entries {
		words = append(words, entries[i].Keywords()...)
		words = append(words, entries[i].Tags...)
	}

	top := TopN(words, KeywordCloudLimit)
	cloud := make([]models.KeywordCount, len(top))
	for i, c := range top {
		cloud[i] = models.KeywordCount{Word: c.Label, Count: c.Count}
	}
	return cloud
}

// MoodDistribution ranks the mood labels of entries, most frequent first.
func MoodDistribution(entries []models.Entry, limit int) []models.MoodCount {
	moods := make([]string, 0, len(entries))
	for i := range entries {
		moods = append(moods, entries[i].MoodLabel())
	}

	top := TopN(moods, limit)
	dist := make([]models.MoodCount, len(top))
	for i, c := range top {
		dist[i] = models.MoodCount{Mood: c.Label, Count: c.Count}
	}
	return dist
}

// EmotionalJourney numbers entries from 1 in the order given. Callers pass entries
// sorted oldest first.
func EmotionalJourney(entries []models.Entry) []models.JourneyPoint {
	journey := make([]models.JourneyPoint, len(entries))
	for i := range entries {
		e := &entries[i]
		journey[i] = models.JourneyPoint{
			ID:             e.ID,
			Date:           e.CreatedAt,
			Title:          e.Title,
			Sentiment:      e.SentimentScore(),
			Emotion:        emotionPtr(e),
			Mood:           e.Mood,
			SequenceNumber: i + 1,
		}
	}
	return journey
}

// MoodTrends projects entries to (date, sentiment, mood, emotion) points in input order.
func MoodTrends(entries []models.Entry) []models.MoodTrendPoint {
	trends := make([]models.MoodTrendPoint, len(entries))
	for i := range entries {
		e := &entries[i]
		trends[i] = models.MoodTrendPoint{
			Date:      e.CreatedAt,
			Sentiment: e.SentimentScore(),
			Mood:      e.Mood,
			Emotion:   emotionPtr(e),
		}
	}
	return trends
}

// Timestamps extracts creation times in input order.
func Timestamps(entries []models.Entry) []time.Time {
	ts := make([]time.Time, len(entries))
	for i := range entries {
		ts[i] = entries[i].CreatedAt
	}
	return ts
}

func emotionPtr(e *models.Entry) *string {
	if e.Sentiment == nil {
		return nil
	}
	return e.Sentiment.Emotion
}

// OverviewCounts are the store-side totals that feed an overview.
type OverviewCounts struct {
	TotalEntries     int64
	EntriesThisMonth int64
	PatternsDetected int64
}

// Overview combines store counts, the entries of the last 30 days and every entry
// timestamp of the user into the dashboard payload.
func Overview(counts OverviewCounts, recent []models.Entry, timestamps []time.Time) models.Overview {
	return models.Overview{
		TotalEntries:     counts.TotalEntries,
		EntriesThisMonth: counts.EntriesThisMonth,
		PatternsDetected: counts.PatternsDetected,
		AverageSentiment: Round2(MeanSentiment(recent)),
		MoodDistribution: MoodDistribution(recent, MoodDistributionLimit),
		JournalingStreak: Streak(timestamps),
	}
}
