package market

import (
	"math"

	"depositguard/internal/models"
)

// SelectComparables returns the transactions whose amount lies within
// ComparableTolerance of the target. When none qualify the input batch is
// returned unchanged, so a non-empty batch always yields a non-empty result.
func SelectComparables(target int64, batch []models.Transaction) []models.Transaction {
	var out []models.Transaction
	for _, tx := range batch {
		if withinTolerance(tx.Amount, target) {
			out = append(out, tx)
		}
	}
	if len(out) == 0 {
		return batch
	}
	return out
}

func withinTolerance(amount, target int64) bool {
	denom := float64(max(target, 1))
	return math.Abs(float64(amount-target))/denom < ComparableTolerance
}
