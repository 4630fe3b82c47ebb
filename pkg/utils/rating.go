package utils

import (
	"math"
)

// kFactor bounds the rating change a single match can produce.
const kFactor = 32

const (
	victoryReward = 450
	defeatReward  = 200
)

// CalculateRewards returns the gems paid out for a finished match. Flat
// amounts; no scaling by rating or streaks.
func CalculateRewards(victory bool) int {
	if victory {
		return victoryReward
	}
	return defeatReward
}

// CalculateRatingChange computes the rating delta from a match outcome using
// the logistic expected-score model. Rounds half away from zero.
func CalculateRatingChange(localRating, oppositionRating int, victory bool) int {
	expectedScore := 1.0 / (1.0 + math.Pow(10, float64(localRating-oppositionRating)/400.0))

	actualScore := 0.0
	if victory {
		actualScore = 1.0
	}

	return int(math.Round(kFactor * (actualScore - expectedScore)))
}
