package config

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed districts.yaml
var districtsYAML []byte

// District is one administrative district and its market registry code.
type District struct {
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code" json:"code"`
}

// DistrictTable is the static district configuration loaded at start-up.
type DistrictTable struct {
	Default               string     `yaml:"default"`
	DefaultCode           string     `yaml:"default_code"`
	Districts             []District `yaml:"districts"`
	LienRiskDistricts     []string   `yaml:"lien_risk_districts"`
	IncidentRiskDistricts []string   `yaml:"incident_risk_districts"`
}

var (
	districtsOnce  sync.Once
	districtsTable DistrictTable
)

// Districts returns the embedded district table. It panics if the embedded
// file is invalid, which can only happen on a broken build.
func Districts() DistrictTable {
	districtsOnce.Do(func() {
		t, err := ParseDistrictTable(districtsYAML)
		if err != nil {
			panic(fmt.Sprintf("config: embedded district table: %v", err))
		}
		districtsTable = t
	})
	return districtsTable
}

// ParseDistrictTable decodes and validates a district table document.
func ParseDistrictTable(data []byte) (DistrictTable, error) {
	var t DistrictTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DistrictTable{}, fmt.Errorf("parsing district table: %w", err)
	}
	if len(t.Districts) == 0 {
		return DistrictTable{}, errors.New("district table is empty")
	}
	if t.Default == "" || t.DefaultCode == "" {
		return DistrictTable{}, errors.New("default district and code are required")
	}

	seen := make(map[string]bool, len(t.Districts))
	for i, d := range t.Districts {
		if d.Name == "" || d.Code == "" {
			return DistrictTable{}, fmt.Errorf("district %d: name and code are required", i)
		}
		if seen[d.Name] {
			return DistrictTable{}, fmt.Errorf("district %q listed twice", d.Name)
		}
		seen[d.Name] = true
	}
	if !seen[t.Default] {
		return DistrictTable{}, fmt.Errorf("default district %q is not in the table", t.Default)
	}
	return t, nil
}
