package common

import "github.com/ronin-planets/backend/internal/entity"

// LearningCost is the simulated price of raising a knowledge level by one.
func LearningCost(level int) int {
	return level
}

// MiningOutput is the amount of resource one mining action yields.
func MiningOutput(level int) int64 {
	return int64(level)
}

// CanCraftRecipe reports whether resources cover every requirement of
// recipe. A requirement is met when the stored amount is at least the
// required amount.
func CanCraftRecipe(recipe entity.Recipe, resources map[string]int64) bool {
	for _, req := range recipe.Requirements {
		if resources[req.Resource] < req.Amount {
			return false
		}
	}

	return true
}

// IsCooldownActive reports whether a cooldown ending at endMs is still
// running at nowMs.
func IsCooldownActive(endMs, nowMs int64) bool {
	return endMs > nowMs
}
