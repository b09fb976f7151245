package ancillary

import (
	"context"
	"fmt"
	"testing"

	"depositguard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimator_Deterministic(t *testing.T) {
	e := NewEstimator(config.Districts())
	ctx := context.Background()

	first, err := e.LienProfile(ctx, "서울 강남구 역삼동 123")
	require.NoError(t, err)
	second, err := e.LienProfile(ctx, "  서울  강남구 역삼동   123 ")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	n1, err := e.NearbyIncidentCount(ctx, "서울 강남구 역삼동 123")
	require.NoError(t, err)
	n2, err := e.NearbyIncidentCount(ctx, "서울 강남구 역삼동 123")
	require.NoError(t, err)
	assert.Equal(t, n1, n2)
}

func TestEstimator_Ranges(t *testing.T) {
	e := NewEstimator(config.Districts())
	ctx := context.Background()

	tests := []struct {
		district      string
		minRatio      int
		maxRatio      int
		minIncidents  int
		maxIncidents  int
		allowedArrear []int64
	}{
		{"강남구", 60, 95, 2, 7, riskyArrears},
		{"서초구", 30, 75, 2, 7, baseArrears},
		{"종로구", 30, 75, 0, 3, baseArrears},
	}

	for _, tt := range tests {
		t.Run(tt.district, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				addr := fmt.Sprintf("서울 %s 어느동 %d", tt.district, i)

				p, err := e.LienProfile(ctx, addr)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, p.SeniorLienRatioPct, tt.minRatio)
				assert.LessOrEqual(t, p.SeniorLienRatioPct, tt.maxRatio)
				assert.Contains(t, tt.allowedArrear, p.ArrearsAmount)
				if p.ArrearsAmount > 0 {
					assert.Equal(t, ArrearsCategoryNationalTax, p.ArrearsCategory)
				} else {
					assert.Empty(t, p.ArrearsCategory)
				}

				n, err := e.NearbyIncidentCount(ctx, addr)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, n, tt.minIncidents)
				assert.LessOrEqual(t, n, tt.maxIncidents)
			}
		})
	}
}

func TestEstimator_CopiesTable(t *testing.T) {
	table := config.DistrictTable{LienRiskDistricts: []string{"강남구"}}
	e := NewEstimator(table)
	table.LienRiskDistricts[0] = "종로구"

	p, err := e.LienProfile(context.Background(), "서울 강남구 역삼동")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.SeniorLienRatioPct, 60)
}
