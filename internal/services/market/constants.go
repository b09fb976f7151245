package market

import "time"

// Registry defaults.
const (
	DefaultBaseURL  = "http://openapi.seoul.go.kr:8088"
	DefaultAPIKey   = "sample"
	DefaultService  = "tbLnOpendataRtmsV"
	DefaultTimeout  = 15 * time.Second
	DefaultPageSize = 200

	// SuccessCode is the RESULT/CODE value of a successful registry call.
	SuccessCode = "INFO-000"
)

// Pricing model.
const (
	// WonPerUnit converts registry amounts (10,000-won units) to won.
	WonPerUnit = 10_000

	// MaxDeposit bounds deposits and registry amounts (10,000-won units) so
	// won prices and the 1.4x sale multiple stay within int64.
	MaxDeposit = 10_000_000_000

	// ComparableTolerance is the relative band around the target deposit.
	ComparableTolerance = 0.40

	// Sale price is modeled as 1.4x the lease price. Kept as a ratio of
	// integers so the estimate is exact.
	SaleMultipleNum = 14
	SaleMultipleDen = 10
)

// Market heat thresholds. All comparisons are strict.
const (
	OverheatedRecentCount = 100
	ActiveRecentCount     = 50
	HighPriceThreshold    = 50_000 // 10,000-won units
)
