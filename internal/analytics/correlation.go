package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
)

const (
	CorrelationWindowDays = 90
	commonMoodsLimit      = 3
)

type phaseBucket struct {
	sum   float64
	count int
	moods []string
}

// ComputeCorrelations groups the entries of the 90 days before asOf by cycle phase and
// summarises sentiment and mood per phase. Every entry is mapped against the profile's
// current period start and cycle length. The boolean is false when the profile is
// not tracking or has no period start.
func ComputeCorrelations(profile *models.CycleProfile, entries []models.Entry, asOf time.Time) (*models.CorrelationResult, bool) {
	if profile == nil || !profile.IsTracking || profile.LastPeriodStart == nil {
		return nil, false
	}

	start := *profile.LastPeriodStart
	length := profile.CycleLength()

	buckets := make(map[models.Phase]*phaseBucket, len(models.Phases))
	for _, p := range models.Phases {
		buckets[p] = &phaseBucket{}
	}

	for _, e := range Since(entries, WindowStart(asOf, CorrelationWindowDays)) {
		b := buckets[PhaseOf(e.CreatedAt, start, length)]
		b.sum += e.SentimentScore()
		b.count++
		if mood := e.MoodLabel(); mood != "" {
			b.moods = append(b.moods, mood)
		}
	}

	correlations := make(map[models.Phase]models.PhaseCorrelation, len(models.Phases))
	means := make(map[models.Phase]float64, len(models.Phases))
	for _, p := range models.Phases {
		b := buckets[p]
		if b.count == 0 {
			continue
		}
		mean := b.sum / float64(b.count)
		means[p] = mean

		top := TopN(b.moods, commonMoodsLimit)
		moods := make([]models.MoodCount, len(top))
		for i, c := range top {
			moods[i] = models.MoodCount{Mood: c.Label, Count: c.Count}
		}

		correlations[p] = models.PhaseCorrelation{
			AverageSentiment: Round2(mean),
			EntriesCount:     b.count,
			CommonMoods:      moods,
			Intensity:        Round2(math.Abs(mean)),
		}
	}

	return &models.CorrelationResult{
		Correlations: correlations,
		Insights:     CorrelationInsights(means),
	}, true
}

// CorrelationInsights names the phase with the lowest mean sentiment as challenging
// and the one with the highest as positive. Phases are compared in cycle order and
// the first phase wins ties. Phases missing from means are skipped.
func CorrelationInsights(means map[models.Phase]float64) []models.CorrelationInsight {
	var (
		lowest, highest models.Phase
		found           bool
	)
	for _, p := range models.Phases {
		m, ok := means[p]
		if !ok {
			continue
		}
		if !found {
			lowest, highest, found = p, p, true
			continue
		}
		if m < means[lowest] {
			lowest = p
		}
		if m > means[highest] {
			highest = p
		}
	}
	if !found {
		return []models.CorrelationInsight{}
	}

	return []models.CorrelationInsight{
		{
			Type:    models.InsightChallengingPhase,
			Phase:   lowest,
			Message: fmt.Sprintf("Your %s phase tends to be emotionally challenging. Consider extra self-care during this time.", lowest),
		},
		{
			Type:    models.InsightPositivePhase,
			Phase:   highest,
			Message: fmt.Sprintf("Your %s phase is typically your best time emotionally. Great for tackling challenging tasks!", highest),
		},
	}
}
