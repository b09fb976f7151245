package risk

import "depositguard/internal/models"

// band is one rung of a threshold ladder.
type band struct {
	min   float64
	score int
	label string
}

// ladder maps a value to the first band it reaches, scanning from the
// highest threshold down. Inclusive ladders match v >= min, strict ones
// v > min. Values below every rung get the floor band.
type ladder struct {
	bands  []band
	strict bool
	floor  band
}

func (l ladder) lookup(v float64) band {
	for _, b := range l.bands {
		if v > b.min || (!l.strict && v == b.min) {
			return b
		}
	}
	return l.floor
}

var (
	ratioLadder = ladder{
		bands: []band{
			{90, 40, RatioExtreme},
			{85, 35, RatioSevere},
			{80, 30, RatioHigh},
			{70, 20, RatioElevated},
			{60, 10, RatioModerate},
		},
		floor: band{0, 0, RatioSafe},
	}

	// Arrears in won.
	arrearsLadder = ladder{
		bands: []band{
			{50_000_000, 15, "heavy arrears"},
			{20_000_000, 10, "significant arrears"},
			{0, 5, "arrears"},
		},
		strict: true,
		floor:  band{0, 0, "none"},
	}

	lienLadder = ladder{
		bands: []band{
			{85, 15, "critical"},
			{75, 12, "high"},
			{65, 8, "elevated"},
		},
		floor: band{0, 0, "normal"},
	}

	incidentLadder = ladder{
		bands: []band{
			{5, 10, "cluster"},
			{3, 7, "several"},
			{1, 4, "isolated"},
		},
		floor: band{0, 0, "none"},
	}
)

type tierBand struct {
	min  int
	tier models.Tier
}

var tierLadder = []tierBand{
	{80, models.Tier{Level: 1, Label: "very high", Recommendation: "Do not sign the contract", Urgency: "stop immediately"}},
	{60, models.Tier{Level: 2, Label: "high", Recommendation: "Careful review required", Urgency: "consult an expert"}},
	{40, models.Tier{Level: 3, Label: "caution", Recommendation: "Deposit guarantee insurance required", Urgency: "safeguards needed"}},
	{20, models.Tier{Level: 4, Label: "low", Recommendation: "Contract acceptable", Urgency: "basic checks"}},
	{0, models.Tier{Level: 5, Label: "safe", Recommendation: "Safe to proceed", Urgency: "proceed normally"}},
}

// ClassifyTier maps a total score to its tier. Scores below zero fall into
// the safest tier.
func ClassifyTier(total int) models.Tier {
	for _, b := range tierLadder {
		if total >= b.min {
			return b.tier
		}
	}
	return tierLadder[len(tierLadder)-1].tier
}
