package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvDefaults(t *testing.T) {
	t.Setenv("DG_STRING", "")
	t.Setenv("DG_INT", "not-a-number")
	t.Setenv("DG_DURATION", "soon")

	assert.Equal(t, "fallback", GetEnv("DG_STRING", "fallback"))
	assert.Equal(t, 7, GetIntEnv("DG_INT", 7))
	assert.Equal(t, 15*time.Second, GetDurationEnv("DG_DURATION", 15*time.Second))
}

func TestGetEnvOverrides(t *testing.T) {
	t.Setenv("DG_STRING", "value")
	t.Setenv("DG_INT", "42")
	t.Setenv("DG_DURATION", "3s")
	t.Setenv("ENV", "production")

	assert.Equal(t, "value", GetEnv("DG_STRING", "fallback"))
	assert.Equal(t, 42, GetIntEnv("DG_INT", 7))
	assert.Equal(t, 3*time.Second, GetDurationEnv("DG_DURATION", time.Second))
	assert.True(t, IsProduction())
}

func TestEmbeddedDistricts(t *testing.T) {
	table := Districts()

	require.Len(t, table.Districts, 25)
	assert.Equal(t, "중구", table.Default)
	assert.Equal(t, "11140", table.DefaultCode)
	assert.Equal(t, District{Name: "종로구", Code: "11110"}, table.Districts[0])
	assert.Contains(t, table.IncidentRiskDistricts, "서초구")
}

func TestParseDistrictTableRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"empty", "default: a\ndefault_code: '1'\n", "empty"},
		{"missing default", "districts: [{name: a, code: '1'}]\n", "default district"},
		{"unknown default", "default: b\ndefault_code: '2'\ndistricts: [{name: a, code: '1'}]\n", "not in the table"},
		{"duplicate", "default: a\ndefault_code: '1'\ndistricts: [{name: a, code: '1'}, {name: a, code: '2'}]\n", "twice"},
		{"missing code", "default: a\ndefault_code: '1'\ndistricts: [{name: a}]\n", "name and code"},
		{"bad yaml", "districts: [", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDistrictTable([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
