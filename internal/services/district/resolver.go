// Package district maps free-text addresses to administrative districts.
package district

import (
	"strings"

	"depositguard/internal/config"
)

// Resolver matches addresses against a fixed, ordered district list.
// It is read-only after construction and safe for concurrent use.
type Resolver struct {
	districts   []config.District
	codes       map[string]string
	defaultName string
	defaultCode string
}

// NewResolver builds a resolver from a validated district table.
func NewResolver(table config.DistrictTable) *Resolver {
	districts := make([]config.District, len(table.Districts))
	copy(districts, table.Districts)

	codes := make(map[string]string, len(districts))
	for _, d := range districts {
		codes[d.Name] = d.Code
	}

	return &Resolver{
		districts:   districts,
		codes:       codes,
		defaultName: table.Default,
		defaultCode: table.DefaultCode,
	}
}

// Resolve returns the first district whose name appears in the address,
// scanning in table order, or the default district.
func (r *Resolver) Resolve(address string) string {
	for _, d := range r.districts {
		if strings.Contains(address, d.Name) {
			return d.Name
		}
	}
	return r.defaultName
}

// Code returns the registry code for a district name. Unknown names map to
// the default code.
func (r *Resolver) Code(name string) string {
	if code, ok := r.codes[name]; ok {
		return code
	}
	return r.defaultCode
}

// Districts lists the known districts in match order.
func (r *Resolver) Districts() []config.District {
	out := make([]config.District, len(r.districts))
	copy(out, r.districts)
	return out
}

// NormalizeAddress collapses whitespace so equivalent spellings share a key.
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(address), " ")
}

// Neighborhood returns the first legal-dong token ("신당동") in the address,
// or "" when there is none.
func Neighborhood(address string) string {
	for _, f := range strings.Fields(address) {
		if strings.HasSuffix(f, "동") && len([]rune(f)) > 1 {
			return f
		}
	}
	return ""
}
