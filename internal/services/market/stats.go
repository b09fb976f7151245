package market

import "depositguard/internal/models"

// ComputeStats aggregates the full batch. The average covers positive,
// non-cancelled amounts; the recent count covers contracts dated in year.
func ComputeStats(batch []models.Transaction, year string) Stats {
	var (
		sum    int64
		n      int64
		recent int
	)
	for _, tx := range batch {
		if !tx.Cancelled() && tx.Amount > 0 {
			sum += tx.Amount
			n++
		}
		if tx.InYear(year) {
			recent++
		}
	}

	var avg int64
	if n > 0 {
		avg = sum / n
	}

	// sum > threshold*n compares the exact mean, not the floored one.
	heat := models.HeatNormal
	switch {
	case recent > OverheatedRecentCount && n > 0 && sum > HighPriceThreshold*n:
		heat = models.HeatOverheated
	case recent > ActiveRecentCount:
		heat = models.HeatActive
	}

	return Stats{
		AveragePrice: avg,
		RecentCount:  recent,
		Heat:         heat,
	}
}
