package analytics

import (
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
)

var asOf = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func ago(d time.Duration) time.Time {
	return asOf.Add(-d)
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func strPtr(s string) *string {
	return &s
}

type entryOpt func(*models.Entry)

func withScore(score float64) entryOpt {
	return func(e *models.Entry) {
		if e.Sentiment == nil {
			e.Sentiment = &models.Sentiment{EntryID: e.ID}
		}
		e.Sentiment.Score = score
	}
}

func withEmotion(emotion string) entryOpt {
	return func(e *models.Entry) {
		if e.Sentiment == nil {
			e.Sentiment = &models.Sentiment{EntryID: e.ID}
		}
		e.Sentiment.Emotion = strPtr(emotion)
	}
}

func withKeywords(words ...string) entryOpt {
	return func(e *models.Entry) {
		if e.Sentiment == nil {
			e.Sentiment = &models.Sentiment{EntryID: e.ID}
		}
		e.Sentiment.Keywords = words
	}
}

func withMood(mood string) entryOpt {
	return func(e *models.Entry) {
		e.Mood = strPtr(mood)
	}
}

func withTags(tags ...string) entryOpt {
	return func(e *models.Entry) {
		e.Tags = tags
	}
}

func newEntry(id string, createdAt time.Time, opts ...entryOpt) models.Entry {
	e := models.Entry{
		ID:        id,
		UserID:    "user-1",
		Title:     "entry " + id,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
