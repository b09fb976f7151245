package models

// DataSource tells consumers whether a snapshot came from registry data.
type DataSource string

const (
	DataSourceAuthoritative DataSource = "authoritative"
	DataSourceEstimated     DataSource = "estimated"
)

// MarketHeat is the qualitative intensity of a district market.
type MarketHeat string

const (
	HeatOverheated MarketHeat = "overheated"
	HeatActive     MarketHeat = "active"
	HeatNormal     MarketHeat = "normal"
	HeatUnknown    MarketHeat = "unknown"
)

// MarketSnapshot summarizes the market around one scoring request.
// Sale and lease prices are in won; AveragePrice keeps the registry's
// 10,000-won unit.
type MarketSnapshot struct {
	EstimatedSalePrice  int64      `json:"estimated_sale_price"`
	EstimatedLeasePrice int64      `json:"estimated_lease_price"`
	TransactionCount    int        `json:"transaction_count"`
	ComparableCount     int        `json:"comparable_count"`
	District            string     `json:"district"`
	DataSource          DataSource `json:"data_source"`
	AveragePrice        int64      `json:"average_price"`
	RecentCount         int        `json:"recent_count"`
	Heat                MarketHeat `json:"market_heat"`
}

// Estimated reports whether the snapshot is a fallback estimate.
func (s MarketSnapshot) Estimated() bool {
	return s.DataSource != DataSourceAuthoritative
}
