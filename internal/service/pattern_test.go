package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JonnyWalker81/mindjournal/backend/internal/detector"
	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
)

func TestDetectPatterns(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := detector.NewMockDetector(ctrl)
	patterns := &fakePatternRepository{}

	d.EXPECT().DetectEmotionalCycles(gomock.Any(), "user-1", detector.DefaultLookbackDays).
		Return([]models.EmotionalCycle{{CycleLength: 7, EmotionType: "anxiety"}}, nil)
	d.EXPECT().DetectTriggerPatterns(gomock.Any(), "user-1").
		Return([]models.Pattern{
			{PatternType: models.PatternTypeTrigger, Name: "deadlines", Strength: 0.7},
			{PatternType: models.PatternTypeTrigger, Name: "commute", Strength: 0.4},
		}, nil)
	d.EXPECT().DetectThoughtPatterns(gomock.Any(), "user-1").
		Return([]models.Pattern{{PatternType: models.PatternTypeThought, Name: "all-or-nothing", Strength: 0.5}}, nil)

	summary, err := NewPatternService(d, patterns, nil).DetectPatterns(context.Background(), "user-1", 0)
	require.NoError(t, err)

	assert.Equal(t, &models.PatternDetectionSummary{Cycles: 1, Triggers: 2, ThoughtPatterns: 1, Total: 4}, summary)

	require.Len(t, patterns.upserted, 1)
	saved := patterns.upserted[0]
	require.Len(t, saved, 3)
	for _, p := range saved {
		assert.Equal(t, "user-1", p.UserID)
	}
	assert.Equal(t, "deadlines", saved[0].Name)
	assert.Equal(t, "all-or-nothing", saved[2].Name)
}

func TestDetectPatterns_DetectorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := detector.NewMockDetector(ctrl)
	patterns := &fakePatternRepository{}
	boom := errors.New("rpc timeout")

	d.EXPECT().DetectEmotionalCycles(gomock.Any(), "user-1", 30).Return(nil, boom)
	d.EXPECT().DetectTriggerPatterns(gomock.Any(), "user-1").Return([]models.Pattern{}, nil).AnyTimes()
	d.EXPECT().DetectThoughtPatterns(gomock.Any(), "user-1").Return([]models.Pattern{}, nil).AnyTimes()

	_, err := NewPatternService(d, patterns, nil).DetectPatterns(context.Background(), "user-1", 30)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, patterns.upserted, "nothing is saved when a detector fails")
}

func TestDetectPatterns_RejectsLookback(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewPatternService(detector.NewMockDetector(ctrl), &fakePatternRepository{}, nil)

	for _, days := range []int{-1, MaxLookbackDays + 1} {
		_, err := svc.DetectPatterns(context.Background(), "user-1", days)
		assert.ErrorIs(t, err, ErrInvalidInput, "days %d", days)
	}
}

func TestListPatterns(t *testing.T) {
	ctrl := gomock.NewController(t)
	patterns := &fakePatternRepository{patterns: []models.Pattern{
		{ID: "p1", UserID: "user-1", PatternType: models.PatternTypeTrigger, Strength: 0.9},
		{ID: "p2", UserID: "user-1", PatternType: models.PatternTypeThought, Strength: 0.2},
		{ID: "p3", UserID: "user-1", PatternType: models.PatternTypeTrigger, Strength: 0.1},
	}}
	svc := NewPatternService(detector.NewMockDetector(ctrl), patterns, nil)

	list, err := svc.ListPatterns(context.Background(), "user-1", repository.PatternFilter{
		Type:        models.PatternTypeTrigger,
		MinStrength: DefaultMinPatternStrength,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID)

	_, err = svc.ListPatterns(context.Background(), "user-1", repository.PatternFilter{MinStrength: 1.5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeletePattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	patterns := &fakePatternRepository{patterns: []models.Pattern{{ID: "p1", UserID: "user-1"}}}
	svc := NewPatternService(detector.NewMockDetector(ctrl), patterns, nil)

	err := svc.DeletePattern(context.Background(), "user-2", "p1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, svc.DeletePattern(context.Background(), "user-1", "p1"))
	assert.Empty(t, patterns.patterns)
}

func TestSuggestCopingStrategies(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := detector.NewMockDetector(ctrl)
	d.EXPECT().SuggestCopingStrategies(gomock.Any(), "user-1", "anxious").
		Return([]models.CopingStrategy{{Strategy: "box breathing", EffectivenessScore: 0.8}}, nil)

	strategies, err := NewPatternService(d, &fakePatternRepository{}, nil).
		SuggestCopingStrategies(context.Background(), "user-1", "anxious")
	require.NoError(t, err)
	require.Len(t, strategies, 1)
	assert.Equal(t, "box breathing", strategies[0].Strategy)
}

func TestGeneratePredictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := detector.NewMockDetector(ctrl)
	d.EXPECT().GeneratePredictions(gomock.Any(), "user-1", detector.DefaultDaysAhead).
		Return([]models.Prediction{}, nil)

	svc := NewPatternService(d, &fakePatternRepository{}, nil)

	predictions, err := svc.GeneratePredictions(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Empty(t, predictions)

	_, err = svc.GeneratePredictions(context.Background(), "user-1", MaxPredictionDays+1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeDays(t *testing.T) {
	tests := []struct {
		days    int
		want    int
		wantErr bool
	}{
		{days: 0, want: 14},
		{days: 1, want: 1},
		{days: 90, want: 90},
		{days: 91, wantErr: true},
		{days: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeDays(tt.days, 14, 90)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidInput)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
