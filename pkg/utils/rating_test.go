package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRewards(t *testing.T) {
	// Exact payouts are contract with the client, not approximations.
	assert.Equal(t, 450, CalculateRewards(true))
	assert.Equal(t, 200, CalculateRewards(false))
	assert.Greater(t, CalculateRewards(true), CalculateRewards(false))
}

func TestCalculateRatingChange(t *testing.T) {
	tests := []struct {
		name       string
		local      int
		opposition int
		victory    bool
		want       int
	}{
		{name: "even win", local: 1500, opposition: 1500, victory: true, want: 16},
		{name: "even loss", local: 1500, opposition: 1500, victory: false, want: -16},
		{name: "win against slightly stronger", local: 1500, opposition: 1520, victory: true, want: 15},
		{name: "loss against slightly stronger", local: 1500, opposition: 1520, victory: false, want: -17},
		{name: "win against much weaker", local: 2000, opposition: 1000, victory: true, want: 32},
		{name: "loss against much weaker", local: 2000, opposition: 1000, victory: false, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateRatingChange(tt.local, tt.opposition, tt.victory))
		})
	}
}

// Swapping roles and flipping the outcome must negate the delta exactly:
// rounding half away from zero keeps the two sides symmetric.
func TestCalculateRatingChangeAntiSymmetry(t *testing.T) {
	pairs := [][2]int{
		{1500, 1500},
		{1500, 1520},
		{800, 1200},
		{2400, 900},
		{1000, 1003},
	}
	for _, pair := range pairs {
		winDelta := CalculateRatingChange(pair[0], pair[1], true)
		lossDelta := CalculateRatingChange(pair[1], pair[0], false)
		assert.Equal(t, winDelta, -lossDelta, "pair %v", pair)
	}
}
