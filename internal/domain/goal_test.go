package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewGoalProgress(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		achieved    float64
		wantRaw     float64
		wantDisplay float64
		wantReached bool
	}{
		{name: "meta superada", value: 1000, achieved: 1200, wantRaw: 120, wantDisplay: 100, wantReached: true},
		{name: "meta exata", value: 1000, achieved: 1000, wantRaw: 100, wantDisplay: 100, wantReached: true},
		{name: "em andamento", value: 1000, achieved: 250, wantRaw: 25, wantDisplay: 25},
		{name: "valor zero", value: 0, achieved: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGoalProgress(Goal{Value: tt.value}, tt.achieved)

			assert.InDelta(t, tt.wantRaw, got.Progress, 1e-9)
			assert.InDelta(t, tt.wantDisplay, got.DisplayProgress, 1e-9)
			assert.Equal(t, tt.wantReached, got.Reached)
		})
	}
}

func TestGoal_IsActiveAndWindow(t *testing.T) {
	goal := Goal{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, goal.IsActive(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, goal.IsActive(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), goal.SalesWindowEnd())
}
