package risk

// Sub-score caps.
const (
	MaxPriceRatioScore   = 40
	MaxMarketScore       = 15
	MaxStructuralScore   = 30
	MaxNeighborhoodScore = 10
	MaxTotalScore        = MaxPriceRatioScore + MaxMarketScore + MaxStructuralScore + MaxNeighborhoodScore
)

// Market-condition scores, evaluated in this order.
const (
	marketOverheatedBusy = 15
	marketOverheated     = 10
	marketThin           = 12
	marketBaseline       = 5

	busyRecentCount = 100 // strict
	thinRecentCount = 20  // strict
)

// Risk-factor trigger points.
const (
	ratioFactorPct = 70.0
	lienFactorPct  = 65
)

// Price-ratio labels.
const (
	RatioExtreme  = "extreme"
	RatioSevere   = "severe (underwater)"
	RatioHigh     = "high"
	RatioElevated = "elevated"
	RatioModerate = "moderate"
	RatioSafe     = "safe"
)
