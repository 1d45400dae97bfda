package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTimeline(t *testing.T) {
	tests := []struct {
		name              string
		currentStatus     string
		expectedProgress  float64
		expectedCompleted []bool
	}{
		{
			name:              "first stage gets the in-progress nudge",
			currentStatus:     "En Diagnóstico",
			expectedProgress:  10,
			expectedCompleted: []bool{true, false, false, false},
		},
		{
			name:              "second stage",
			currentStatus:     "En espera de aprobación por cliente",
			expectedProgress:  100.0/3 + 10,
			expectedCompleted: []bool{true, true, false, false},
		},
		{
			name:              "third stage",
			currentStatus:     "En servicio",
			expectedProgress:  200.0/3 + 10,
			expectedCompleted: []bool{true, true, true, false},
		},
		{
			name:              "final stage is exactly 100 with no nudge",
			currentStatus:     "Pieza lista para entrega",
			expectedProgress:  100,
			expectedCompleted: []bool{true, true, true, true},
		},
		{
			name:              "unrecognized status yields zero progress",
			currentStatus:     "En Taller",
			expectedProgress:  0,
			expectedCompleted: []bool{false, false, false, false},
		},
		{
			name:              "empty status yields zero progress",
			currentStatus:     "",
			expectedProgress:  0,
			expectedCompleted: []bool{false, false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeline := DeriveTimeline(tt.currentStatus)

			assert.InDelta(t, tt.expectedProgress, timeline.ProgressPercent, 0.001)
			assert.Len(t, timeline.Stages, len(TrackingStages))
			for i, stage := range timeline.Stages {
				assert.Equal(t, TrackingStages[i], stage.Status)
				assert.Equal(t, tt.expectedCompleted[i], stage.Completed,
					"stage %d completion mismatch", i)
			}
		})
	}
}

func TestDeriveTimeline_ProgressStrictlyIncreases(t *testing.T) {
	previous := -1.0
	for _, status := range TrackingStages {
		timeline := DeriveTimeline(status)
		assert.Greater(t, timeline.ProgressPercent, previous,
			"progress must strictly increase along the canonical stages")
		previous = timeline.ProgressPercent
	}

	assert.Equal(t, 100.0, previous, "final stage must land exactly on 100")
}

func TestDeriveTimeline_ProgressNeverExceeds100(t *testing.T) {
	for _, status := range TrackingStages {
		timeline := DeriveTimeline(status)
		assert.LessOrEqual(t, timeline.ProgressPercent, 100.0)
	}
}
