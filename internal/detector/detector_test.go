package detector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRPCDetectorEmptyResultIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpc := NewMockRPCCaller(ctrl)

	rpc.EXPECT().
		RPC(gomock.Any(), "detect_trigger_patterns", map[string]interface{}{"p_user_id": "user-1"}).
		Return([]byte("null"), nil)
	rpc.EXPECT().
		RPC(gomock.Any(), "detect_thought_patterns", gomock.Any()).
		Return([]byte("[]"), nil)

	d := NewRPCDetector(rpc)

	triggers, err := d.DetectTriggerPatterns(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, triggers)
	assert.Empty(t, triggers)

	thoughts, err := d.DetectThoughtPatterns(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, thoughts)
}

func TestRPCDetectorDecodesResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpc := NewMockRPCCaller(ctrl)

	rpc.EXPECT().
		RPC(gomock.Any(), "detect_emotional_cycles", map[string]interface{}{"p_user_id": "user-1", "p_lookback_days": 60}).
		Return([]byte(`[{"cycle_length":7,"peak_day":2,"valley_day":5,"emotion_type":"sentiment","confidence":0.8}]`), nil)

	cycles, err := NewRPCDetector(rpc).DetectEmotionalCycles(context.Background(), "user-1", 60)

	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, 7, cycles[0].CycleLength)
	assert.Equal(t, 0.8, cycles[0].Confidence)
}

func TestRPCDetectorCopingMood(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpc := NewMockRPCCaller(ctrl)

	rpc.EXPECT().
		RPC(gomock.Any(), "suggest_coping_strategies", map[string]interface{}{"p_user_id": "user-1", "p_mood": nil}).
		Return([]byte(`[]`), nil)
	rpc.EXPECT().
		RPC(gomock.Any(), "suggest_coping_strategies", map[string]interface{}{"p_user_id": "user-1", "p_mood": "anxious"}).
		Return([]byte(`[{"strategy":"Breathing","category":"mindfulness","effectiveness_score":0.7,"times_used":3}]`), nil)

	d := NewRPCDetector(rpc)

	none, err := d.SuggestCopingStrategies(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Empty(t, none)

	some, err := d.SuggestCopingStrategies(context.Background(), "user-1", "anxious")
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "Breathing", some[0].Strategy)
}

func TestRPCDetectorPropagatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpc := NewMockRPCCaller(ctrl)
	upstream := errors.New("connection reset")

	rpc.EXPECT().RPC(gomock.Any(), "generate_predictions", gomock.Any()).Return(nil, upstream)
	rpc.EXPECT().RPC(gomock.Any(), "detect_trigger_patterns", gomock.Any()).Return([]byte(`{not json`), nil)

	d := NewRPCDetector(rpc)

	preds, err := d.GeneratePredictions(context.Background(), "user-1", 14)
	assert.ErrorIs(t, err, upstream)
	assert.Nil(t, preds)

	_, err = d.DetectTriggerPatterns(context.Background(), "user-1")
	assert.Error(t, err)
}
