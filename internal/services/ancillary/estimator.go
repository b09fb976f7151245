// Package ancillary provides the lien and nearby-incident data consumed by
// the risk scorer.
package ancillary

import (
	"context"
	"strings"

	"depositguard/internal/config"
	"depositguard/internal/models"
	"depositguard/internal/services/district"

	"github.com/cespare/xxhash/v2"
)

// ArrearsCategoryNationalTax labels estimated arrears.
const ArrearsCategoryNationalTax = "national tax"

// Arrears buckets in won. Repeated zeros weight the draw toward no arrears.
var (
	riskyArrears = []int64{0, 0, 23_000_000, 54_000_000, 89_000_000, 120_000_000}
	baseArrears  = []int64{0, 0, 0, 0, 12_000_000, 34_000_000}
)

// Estimator derives placeholder lien and incident figures from the address
// alone. Values are a pure function of the normalized address, so repeated
// requests agree with each other.
type Estimator struct {
	lienRisk     []string
	incidentRisk []string
}

func NewEstimator(table config.DistrictTable) *Estimator {
	return &Estimator{
		lienRisk:     append([]string(nil), table.LienRiskDistricts...),
		incidentRisk: append([]string(nil), table.IncidentRiskDistricts...),
	}
}

func (e *Estimator) LienProfile(_ context.Context, address string) (models.LienProfile, error) {
	h := addressHash("lien", address)

	var (
		arrears int64
		ratio   int
	)
	if containsAny(address, e.lienRisk) {
		arrears = riskyArrears[h%uint64(len(riskyArrears))]
		ratio = 60 + int((h>>16)%36) // 60..95
	} else {
		arrears = baseArrears[h%uint64(len(baseArrears))]
		ratio = 30 + int((h>>16)%46) // 30..75
	}

	p := models.LienProfile{ArrearsAmount: arrears, SeniorLienRatioPct: ratio}
	if arrears > 0 {
		p.ArrearsCategory = ArrearsCategoryNationalTax
	}
	return p, nil
}

func (e *Estimator) NearbyIncidentCount(_ context.Context, address string) (int, error) {
	h := addressHash("incident", address)
	if containsAny(address, e.incidentRisk) {
		return 2 + int(h%6), nil // 2..7
	}
	return int(h % 4), nil // 0..3
}

func addressHash(salt, address string) uint64 {
	return xxhash.Sum64String(salt + ":" + district.NormalizeAddress(address))
}

func containsAny(address string, names []string) bool {
	for _, n := range names {
		if strings.Contains(address, n) {
			return true
		}
	}
	return false
}
