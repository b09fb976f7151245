package risk

import (
	"depositguard/internal/models"
	"depositguard/internal/services/market"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Compose scores one lease. It never fails: a snapshot without a lease
// price uses the deposit, and a missing sale price scores the ratio as 0.
// The result depends only on its arguments.
func Compose(deposit int64, snap models.MarketSnapshot, lien models.LienProfile, incidents int) models.RiskAssessment {
	lease := snap.EstimatedLeasePrice
	if lease <= 0 {
		lease = deposit * market.WonPerUnit
	}
	if incidents < 0 {
		incidents = 0
	}
	if snap.Heat == "" {
		snap.Heat = models.HeatUnknown
	}

	var factors []models.RiskFactor
	add := func(kind string, points int, format string, args ...interface{}) {
		factors = append(factors, models.RiskFactor{
			Kind:   kind,
			Text:   printer.Sprintf(format, args...),
			Points: points,
		})
	}

	// Price ratio.
	ratio := priceRatio(lease, snap.EstimatedSalePrice)
	rb := ratioLadder.lookup(ratio)
	if ratio >= ratioFactorPct {
		add(models.FactorPriceRatio, rb.score, "Lease-to-price ratio %.1f%% (%s)", ratio, rb.label)
	}

	// Market condition.
	marketScore := marketConditionScore(snap.Heat, snap.RecentCount)
	switch {
	case snap.Heat == models.HeatOverheated:
		add(models.FactorMarket, marketScore, "Overheated market with %d recent transactions", snap.RecentCount)
	case snap.RecentCount < thinRecentCount:
		add(models.FactorMarket, marketScore, "Thin market with only %d recent transactions", snap.RecentCount)
	}

	// Structural.
	ab := arrearsLadder.lookup(float64(lien.ArrearsAmount))
	if lien.ArrearsAmount > 0 {
		category := lien.ArrearsCategory
		if category == "" {
			category = "unspecified"
		}
		add(models.FactorArrears, ab.score, "Tax arrears of %d won (%s)", lien.ArrearsAmount, category)
	}
	lb := lienLadder.lookup(float64(lien.SeniorLienRatioPct))
	if lien.SeniorLienRatioPct >= lienFactorPct {
		add(models.FactorLien, lb.score, "Senior liens at %d%% of property value", lien.SeniorLienRatioPct)
	}

	// Neighborhood.
	ib := incidentLadder.lookup(float64(incidents))
	if incidents > 0 {
		add(models.FactorIncidents, ib.score, "%d lease fraud incidents reported nearby", incidents)
	}

	sub := models.SubScores{
		PriceRatio:      rb.score,
		MarketCondition: marketScore,
		Structural:      ab.score + lb.score,
		Neighborhood:    ib.score,
	}
	total := sub.Total()
	tier := ClassifyTier(total)

	return models.RiskAssessment{
		TotalScore:      total,
		Tier:            tier,
		Factors:         factors,
		Recommendation:  tier.Recommendation,
		Urgency:         tier.Urgency,
		SubScores:       sub,
		PriceRatioPct:   ratio,
		PriceRatioLabel: rb.label,
		Market:          snap,
		Lien:            lien,
		NearbyIncidents: incidents,
	}
}

// priceRatio is lease/sale as a percentage, or 0 without a sale price.
func priceRatio(lease, sale int64) float64 {
	if sale <= 0 || lease <= 0 {
		return 0
	}
	return float64(lease*100) / float64(sale)
}

// marketConditionScore checks the overheated branches before volume, so a
// low-volume overheated market scores lower than a low-volume normal one.
func marketConditionScore(heat models.MarketHeat, recent int) int {
	switch {
	case heat == models.HeatOverheated && recent > busyRecentCount:
		return marketOverheatedBusy
	case heat == models.HeatOverheated:
		return marketOverheated
	case recent < thinRecentCount:
		return marketThin
	default:
		return marketBaseline
	}
}
