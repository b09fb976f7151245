package market

import (
	"net/http"
	"time"

	"depositguard/internal/models"
)

// Query selects a page of registry records. DistrictCode takes precedence
// over DistrictName; Year is optional.
type Query struct {
	DistrictCode string
	DistrictName string
	Year         string
	Start        int
	End          int
}

// Batch is a successfully fetched page.
type Batch struct {
	Transactions []models.Transaction
	TotalCount   int // list_total_count reported by the registry
	Skipped      int // malformed rows dropped while parsing
}

// Stats are the aggregate figures derived from a full batch.
type Stats struct {
	AveragePrice int64
	RecentCount  int
	Heat         models.MarketHeat
}

// ClientConfig configures the registry client.
type ClientConfig struct {
	BaseURL    string
	APIKey     string
	Service    string
	Timeout    time.Duration
	HTTPClient *http.Client
}
