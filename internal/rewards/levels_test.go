package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelTable(t *testing.T) {
	assert.Len(t, Levels, 13)
	assert.Equal(t, "", Levels[0].Reward)
	for i, lvl := range Levels {
		assert.Equal(t, i, lvl.Level)
		// requirements are symmetric at every level
		assert.Equal(t, lvl.LeftRequired, lvl.RightRequired)
	}
	assert.Equal(t, 1500, Levels[MaxLevel].LeftRequired)
	assert.Equal(t, "National Officer", Levels[MaxLevel].Rank)
}

func TestNextTarget(t *testing.T) {
	tests := []struct {
		name     string
		achieved []int
		want     int
	}{
		{"nothing achieved", nil, 1},
		{"empty set", []int{}, 1},
		{"levels one and two", []int{1, 2}, 3},
		{"unordered input", []int{2, 1}, 3},
		{"top level capped", []int{12}, 12},
		{"near top", []int{11}, 12},
		{"single level", []int{5}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextTarget(tt.achieved))
		})
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		left     int
		right    int
		required int
		want     float64
	}{
		{"no members", 0, 0, 6, 0},
		{"smaller side governs", 6, 3, 6, 0.5},
		{"both sides complete", 6, 6, 6, 1},
		{"overshoot capped", 20, 9, 6, 1},
		{"level zero requirement guarded", 4, 4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.left, tt.right, tt.required), 1e-9)
		})
	}
}
