package analytics

import (
	"math"
	"slices"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
)

const (
	sentimentWeight = 0.4
	tagWeight       = 0.4
	moodWeight      = 0.2

	// SimilarityThreshold is the exclusive lower bound for a related entry.
	SimilarityThreshold = 0.5
	// MaxSimilarEntries caps a similarity ranking.
	MaxSimilarEntries = 5
)

// Similarity scores how alike two entries are. The sentiment term is not clamped
// and goes negative when scores are more than one apart.
func Similarity(a, b *models.Entry) float64 {
	score := (1 - math.Abs(a.SentimentScore()-b.SentimentScore())) * sentimentWeight
	score += jaccard(a.Tags, b.Tags) * tagWeight

	if ma, mb := a.MoodLabel(), b.MoodLabel(); ma != "" && mb != "" && ma == mb {
		score += moodWeight
	}
	return score
}

// RankSimilar returns the candidates scoring above SimilarityThreshold against
// target, best first, at most MaxSimilarEntries. The target itself is skipped.
// Equal scores keep candidate order.
func RankSimilar(target *models.Entry, candidates []models.Entry) []models.SimilarEntry {
	ranked := make([]models.SimilarEntry, 0)
	for i := range candidates {
		c := &candidates[i]
		if c.ID == target.ID {
			continue
		}
		s := Similarity(target, c)
		if s > SimilarityThreshold {
			ranked = append(ranked, models.SimilarEntry{Entry: *c, Similarity: s})
		}
	}

	slices.SortStableFunc(ranked, func(x, y models.SimilarEntry) int {
		switch {
		case x.Similarity > y.Similarity:
			return -1
		case x.Similarity < y.Similarity:
			return 1
		}
		return 0
	})

	if len(ranked) > MaxSimilarEntries {
		ranked = ranked[:MaxSimilarEntries]
	}
	return ranked
}

// jaccard is |a∩b| / |a∪b| over the distinct tags of both sides, 0 for an empty union.
func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	union := len(setA)
	inter := 0
	for t := range setB {
		if _, ok := setA[t]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
