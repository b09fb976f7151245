package market

import "depositguard/internal/models"

// BuildSnapshot derives an authoritative snapshot from a fetched batch.
// It returns false when the batch holds no usable amount, in which case the
// caller should fall back to EstimatedSnapshot.
func BuildSnapshot(deposit int64, district string, batch []models.Transaction, year string) (models.MarketSnapshot, bool) {
	usable := make([]models.Transaction, 0, len(batch))
	for _, tx := range batch {
		if !tx.Cancelled() && tx.Amount > 0 {
			usable = append(usable, tx)
		}
	}
	if len(usable) == 0 {
		return models.MarketSnapshot{}, false
	}

	comps := SelectComparables(deposit, usable)
	var sum int64
	for _, tx := range comps {
		sum += tx.Amount
	}
	n := int64(len(comps))

	stats := ComputeStats(batch, year)

	return models.MarketSnapshot{
		EstimatedSalePrice:  sum * SaleMultipleNum / (n * SaleMultipleDen) * WonPerUnit,
		EstimatedLeasePrice: sum / n * WonPerUnit,
		TransactionCount:    len(batch),
		ComparableCount:     len(comps),
		District:            district,
		DataSource:          models.DataSourceAuthoritative,
		AveragePrice:        stats.AveragePrice,
		RecentCount:         stats.RecentCount,
		Heat:                stats.Heat,
	}, true
}

// EstimatedSnapshot models the market from the deposit alone: lease equals
// the deposit and sale is 1.4x the deposit.
func EstimatedSnapshot(deposit int64, district string) models.MarketSnapshot {
	lease := deposit * WonPerUnit
	return models.MarketSnapshot{
		EstimatedSalePrice:  lease * SaleMultipleNum / SaleMultipleDen,
		EstimatedLeasePrice: lease,
		District:            district,
		DataSource:          models.DataSourceEstimated,
		AveragePrice:        deposit,
		Heat:                models.HeatUnknown,
	}
}
