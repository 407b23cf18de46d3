package models

import (
	"strings"
	"time"
)

// Entry is a single journal record authored by a user.
type Entry struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Mood      *string    `json:"mood,omitempty"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Sentiment *Sentiment `json:"sentiment,omitempty"`
}

// Sentiment is the analyzer output attached 1:1 to an entry.
type Sentiment struct {
	ID        string    `json:"id,omitempty"`
	EntryID   string    `json:"entry_id"`
	Score     float64   `json:"score"`
	Magnitude *float64  `json:"magnitude,omitempty"`
	Emotion   *string   `json:"emotion,omitempty"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}

// SentimentScore returns the entry's score, or 0 for entries that were never analyzed.
func (e *Entry) SentimentScore() float64 {
	if e.Sentiment == nil {
		return 0
	}
	return e.Sentiment.Score
}

// MoodLabel returns the mood or "" when unset.
func (e *Entry) MoodLabel() string {
	if e.Mood == nil {
		return ""
	}
	return *e.Mood
}

// EmotionLabel returns the analyzer emotion or "" when unset.
func (e *Entry) EmotionLabel() string {
	if e.Sentiment == nil || e.Sentiment.Emotion == nil {
		return ""
	}
	return *e.Sentiment.Emotion
}

// Keywords returns the analyzer keywords, nil for unanalyzed entries.
func (e *Entry) Keywords() []string {
	if e.Sentiment == nil {
		return nil
	}
	return e.Sentiment.Keywords
}

// NormalizeTags trims tags, drops blanks and collapses duplicates keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// CreateEntryRequest represents the request to create an entry.
// Offline clients may supply their own UUIDv7 ID.
type CreateEntryRequest struct {
	ID      string   `json:"id" binding:"omitempty,uuid"`
	Title   string   `json:"title" binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	Mood    *string  `json:"mood" binding:"omitempty,max=50"`
	Tags    []string `json:"tags" binding:"omitempty,max=30,dive,max=50"`
}

// UpdateEntryRequest represents the request to update an entry.
// Nil fields are left untouched; a null mood clears it.
type UpdateEntryRequest struct {
	Title   *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string          `json:"content" binding:"omitempty,min=1"`
	Mood    Nullable[string] `json:"mood"`
	Tags    []string         `json:"tags" binding:"omitempty,max=30,dive,max=50"`
}

// MaxMoodLength bounds a mood label.
const MaxMoodLength = 50

// EntryQuery selects an owner's entries by creation time.
type EntryQuery struct {
	Since     *time.Time
	Until     *time.Time
	Ascending bool
	Limit     int
	Offset    int
}

// EntrySearch holds the optional filters of an entry search.
type EntrySearch struct {
	Keyword   string
	Tag       string
	StartDate *time.Time
	EndDate   *time.Time
}

// EntryPage is a paginated list of entries.
type EntryPage struct {
	Count   int64   `json:"count"`
	Page    int     `json:"page"`
	Pages   int     `json:"pages"`
	Entries []Entry `json:"entries"`
}
