package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   []LabelCount
	}{
		{
			name:   "ranked by count",
			labels: []string{"a", "b", "a", "c", "b", "a"},
			want:   []LabelCount{{"a", 3}, {"b", 2}, {"c", 1}},
		},
		{
			name:   "ties keep first seen order",
			labels: []string{"x", "y", "y", "x", "z"},
			want:   []LabelCount{{"x", 2}, {"y", 2}, {"z", 1}},
		},
		{
			name:   "later label overtakes",
			labels: []string{"solo", "pair", "pair"},
			want:   []LabelCount{{"pair", 2}, {"solo", 1}},
		},
		{
			name:   "empty labels ignored",
			labels: []string{"", "a", ""},
			want:   []LabelCount{{"a", 1}},
		},
		{
			name:   "nothing",
			labels: nil,
			want:   []LabelCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Frequency(tt.labels))
		})
	}
}

func TestTopN(t *testing.T) {
	labels := []string{"a", "b", "a", "c", "b", "a", "d"}

	assert.Equal(t, []LabelCount{{"a", 3}, {"b", 2}}, TopN(labels, 2))
	assert.Len(t, TopN(labels, 0), 4)
	assert.Len(t, TopN(labels, 10), 4)
}

func TestFrequencyDeterministic(t *testing.T) {
	labels := []string{"m", "n", "o", "p", "m", "n", "o", "p", "q"}
	first := Frequency(labels)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Frequency(labels))
	}
}
