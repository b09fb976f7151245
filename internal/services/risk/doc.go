/*
Package risk scores the deposit risk of a residential lease.

An assessment combines four weighted sub-scores:
- Price ratio (max 40): lease price as a share of the estimated sale price
- Market condition (max 15): market heat and recent transaction volume
- Structural (max 30): tax arrears and senior liens on the property
- Neighborhood (max 10): known lease-fraud incidents nearby

The total (0-100) maps onto five tiers, each with a fixed recommendation
and urgency.

Usage:

	engine := risk.NewEngine(provider, source, resolver, risk.WithMetrics(collector))

	assessment, err := engine.Assess(ctx, "서울 강남구 역삼동 123", 30000)

Deposits are in 10,000-won units. Assess only fails for a non-positive
deposit. Registry outages and ancillary lookup failures degrade the
assessment instead: the market snapshot falls back to an estimate derived
from the deposit and is labeled as such in Market.DataSource.

Compose is the pure scoring step and can be called directly with a
snapshot and lien profile obtained elsewhere.
*/
package risk
