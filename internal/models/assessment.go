package models

import "fmt"

// SubScores are the four weighted components of a total risk score.
type SubScores struct {
	PriceRatio      int `json:"price_ratio"`
	MarketCondition int `json:"market_condition"`
	Structural      int `json:"structural"`
	Neighborhood    int `json:"neighborhood"`
}

// Total is the sum of the four components.
func (s SubScores) Total() int {
	return s.PriceRatio + s.MarketCondition + s.Structural + s.Neighborhood
}

// Tier is one of the five ordered risk categories.
type Tier struct {
	Level          int    `json:"level"`
	Label          string `json:"label"`
	Recommendation string `json:"recommendation"`
	Urgency        string `json:"urgency"`
}

func (t Tier) String() string {
	return fmt.Sprintf("%s / tier %d", t.Label, t.Level)
}

// Risk factor kinds.
const (
	FactorPriceRatio = "price_ratio"
	FactorMarket     = "market"
	FactorArrears    = "arrears"
	FactorLien       = "senior_lien"
	FactorIncidents  = "nearby_incidents"
)

// RiskFactor is one advisory annotation and the points it contributed.
type RiskFactor struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// RiskAssessment is the scoring result for one address and deposit.
type RiskAssessment struct {
	TotalScore      int            `json:"total_score"`
	Tier            Tier           `json:"tier"`
	Factors         []RiskFactor   `json:"risk_factors"`
	Recommendation  string         `json:"recommendation"`
	Urgency         string         `json:"urgency"`
	SubScores       SubScores      `json:"sub_scores"`
	PriceRatioPct   float64        `json:"price_ratio_pct"`
	PriceRatioLabel string         `json:"price_ratio_label"`
	Market          MarketSnapshot `json:"market"`
	Lien            LienProfile    `json:"lien"`
	NearbyIncidents int            `json:"nearby_incidents"`
}
