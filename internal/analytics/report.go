package analytics

import (
	"fmt"
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
)

const (
	WeeklyWindowDays  = 7
	MonthlyWindowDays = 30

	monthlyBuckets   = 4
	topEmotionsLimit = 3

	positiveWeekThreshold    = 0.3
	challengingWeekThreshold = -0.3
	consistentWeekEntries    = 5
	sparseWeekEntries        = 3
)

const (
	MessagePositiveWeek    = "Your week has been emotionally positive overall. Great job taking care of yourself!"
	MessageChallengingWeek = "This week has been challenging. Remember to be gentle with yourself."
	MessageConsistentWeek  = "Excellent consistency with journaling this week! This builds great mental health habits."
	MessageSparseWeek      = "Try to journal more consistently. Even brief entries can provide valuable insights."
)

// Since returns the entries created at or after cutoff, in input order.
func Since(entries []models.Entry, cutoff time.Time) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// MeanSentiment averages the sentiment scores of entries, counting unanalyzed entries
// as 0. It returns 0 for an empty slice.
func MeanSentiment(entries []models.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for i := range entries {
		sum += entries[i].SentimentScore()
	}
	return sum / float64(len(entries))
}

// WeeklyReport summarises entries of the 7 days before asOf. The boolean is false
// when there is nothing to report.
func WeeklyReport(entries []models.Entry, asOf time.Time) (*models.WeeklyReport, bool) {
	window := Since(entries, WindowStart(asOf, WeeklyWindowDays))
	if len(window) == 0 {
		return nil, false
	}

	best, worst := 0, 0
	emotions := make([]string, 0, len(window))
	for i := range window {
		score := window[i].SentimentScore()
		if score > window[best].SentimentScore() {
			best = i
		}
		if score < window[worst].SentimentScore() {
			worst = i
		}
		emotions = append(emotions, window[i].EmotionLabel())
	}

	mean := MeanSentiment(window)
	top := TopN(emotions, topEmotionsLimit)
	topEmotions := make([]models.EmotionCount, len(top))
	for i, c := range top {
		topEmotions[i] = models.EmotionCount{Emotion: c.Label, Count: c.Count}
	}

	return &models.WeeklyReport{
		Period:           "Last 7 days",
		TotalEntries:     len(window),
		AverageSentiment: Round2(mean),
		BestDay:          highlight(&window[best]),
		WorstDay:         highlight(&window[worst]),
		TopEmotions:      topEmotions,
		Insights:         weeklyInsights(mean, len(window)),
	}, true
}

func weeklyInsights(mean float64, count int) []string {
	insights := make([]string, 0, 2)
	if mean > positiveWeekThreshold {
		insights = append(insights, MessagePositiveWeek)
	}
	if mean < challengingWeekThreshold {
		insights = append(insights, MessageChallengingWeek)
	}
	if count >= consistentWeekEntries {
		insights = append(insights, MessageConsistentWeek)
	}
	if count < sparseWeekEntries {
		insights = append(insights, MessageSparseWeek)
	}
	return insights
}

func highlight(e *models.Entry) models.DayHighlight {
	h := models.DayHighlight{EntryID: e.ID, Date: e.CreatedAt, Title: e.Title}
	if e.Sentiment != nil {
		score := e.Sentiment.Score
		h.Sentiment = &score
	}
	return h
}

// MonthlyReport splits the entries of the 30 days before asOf into four 7-day
// buckets, most recent first. Anything older than 21 days lands in the last bucket.
// The boolean is false when there is nothing to report.
func MonthlyReport(entries []models.Entry, asOf time.Time) (*models.MonthlyReport, bool) {
	window := Since(entries, WindowStart(asOf, MonthlyWindowDays))
	if len(window) == 0 {
		return nil, false
	}

	var buckets [monthlyBuckets][]models.Entry
	for _, e := range window {
		idx := MonthlyBucketIndex(e.CreatedAt, asOf)
		buckets[idx] = append(buckets[idx], e)
	}

	breakdown := make([]models.WeekBucket, monthlyBuckets)
	for i, b := range buckets {
		breakdown[i] = models.WeekBucket{
			Week:             fmt.Sprintf("Week %d", monthlyBuckets-i),
			Entries:          len(b),
			AverageSentiment: Round2(MeanSentiment(b)),
			NoEntries:        len(b) == 0,
		}
	}

	return &models.MonthlyReport{
		Period:          "Last 30 days",
		TotalEntries:    len(window),
		WeeklyBreakdown: breakdown,
	}, true
}

// MonthlyBucketIndex returns the bucket for an entry created at t, 0 being the most
// recent week.
func MonthlyBucketIndex(t, asOf time.Time) int {
	return min(elapsedDays(t, asOf)/7, monthlyBuckets-1)
}
