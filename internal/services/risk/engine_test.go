package risk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"depositguard/internal/config"
	"depositguard/internal/models"
	"depositguard/internal/services/district"
	"depositguard/internal/services/market"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

type stubProvider struct {
	mu    sync.Mutex
	batch *market.Batch
	err   error
	query market.Query
}

func (p *stubProvider) Fetch(_ context.Context, q market.Query) (*market.Batch, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = q
	return p.batch, p.err
}

type stubSource struct {
	lien      models.LienProfile
	lienErr   error
	incidents int
	incErr    error
}

func (s stubSource) LienProfile(context.Context, string) (models.LienProfile, error) {
	return s.lien, s.lienErr
}

func (s stubSource) NearbyIncidentCount(context.Context, string) (int, error) {
	return s.incidents, s.incErr
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordAssessment(tier int, source models.DataSource, d time.Duration) {
	m.Called(tier, source, d)
}
func (m *MockMetrics) RecordInvalidInput()              { m.Called() }
func (m *MockMetrics) RecordUpstreamUnavailable()       { m.Called() }
func (m *MockMetrics) RecordSkippedRows(n int)          { m.Called(n) }
func (m *MockMetrics) RecordAncillaryDegraded(l string) { m.Called(l) }

func newEngine(p market.Provider, s stubSource, opts ...Option) *Engine {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewEngine(p, s, district.NewResolver(config.Districts()), opts...)
}

func rows(date string, amounts ...int64) []models.Transaction {
	out := make([]models.Transaction, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, models.Transaction{DistrictName: "강남구", ContractDate: date, Amount: a})
	}
	return out
}

func TestEngine_AssessAuthoritative(t *testing.T) {
	provider := &stubProvider{batch: &market.Batch{
		Transactions: rows("20260410", 28000, 30000, 32000, 90000),
		TotalCount:   4,
	}}
	e := newEngine(provider, stubSource{lien: models.LienProfile{SeniorLienRatioPct: 70}, incidents: 2})

	a, err := e.Assess(context.Background(), "서울특별시  강남구 역삼동 123", 30000)
	require.NoError(t, err)

	assert.Equal(t, market.Query{
		DistrictCode: "11680",
		DistrictName: "강남구",
		Year:         "2026",
		Start:        1,
		End:          market.DefaultPageSize,
	}, provider.query)

	assert.Equal(t, models.DataSourceAuthoritative, a.Market.DataSource)
	assert.Equal(t, "강남구", a.Market.District)
	assert.Equal(t, 3, a.Market.ComparableCount)
	assert.Equal(t, int64(300_000_000), a.Market.EstimatedLeasePrice)
	assert.Equal(t, int64(420_000_000), a.Market.EstimatedSalePrice)

	// 71.4% -> 20, thin market -> 12, lien 70% -> 8, two incidents -> 4.
	assert.Equal(t, models.SubScores{PriceRatio: 20, MarketCondition: 12, Structural: 8, Neighborhood: 4}, a.SubScores)
	assert.Equal(t, 44, a.TotalScore)
	assert.Equal(t, 3, a.Tier.Level)
}

func TestEngine_RejectsOutOfRangeDeposit(t *testing.T) {
	deposits := []int64{0, -100, market.MaxDeposit + 1, 700_000_000_000_000, 1_000_000_000_000_000}

	metrics := new(MockMetrics)
	metrics.On("RecordInvalidInput").Return().Times(len(deposits))

	provider := &stubProvider{}
	e := newEngine(provider, stubSource{}, WithMetrics(metrics))

	for _, deposit := range deposits {
		a, err := e.Assess(context.Background(), "서울 중구", deposit)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, ErrInvalidDeposit)
	}
	assert.Equal(t, market.Query{}, provider.query)
	metrics.AssertExpectations(t)
}

func TestEngine_LargestDepositKeepsPricesOrdered(t *testing.T) {
	e := newEngine(&stubProvider{err: market.ErrUpstreamUnavailable}, stubSource{})

	a, err := e.Assess(context.Background(), "서울 중구", market.MaxDeposit)
	require.NoError(t, err)

	assert.Equal(t, int64(market.MaxDeposit*market.WonPerUnit), a.Market.EstimatedLeasePrice)
	assert.Greater(t, a.Market.EstimatedSalePrice, a.Market.EstimatedLeasePrice)
	assert.InDelta(t, 100.0/1.4, a.PriceRatioPct, 1e-9)
}

func TestEngine_UpstreamUnavailableFallsBackToEstimate(t *testing.T) {
	metrics := new(MockMetrics)
	metrics.On("RecordUpstreamUnavailable").Return().Once()
	metrics.On("RecordAssessment", 4, models.DataSourceEstimated, time.Duration(0)).Return().Once()

	provider := &stubProvider{err: fmt.Errorf("%w: %w", market.ErrUpstreamUnavailable, context.DeadlineExceeded)}
	e := newEngine(provider, stubSource{}, WithMetrics(metrics))

	a, err := e.Assess(context.Background(), "서울 마포구 합정동", 30000)
	require.NoError(t, err)

	assert.True(t, a.Market.Estimated())
	assert.Equal(t, "마포구", a.Market.District)
	assert.Equal(t, int64(300_000_000), a.Market.EstimatedLeasePrice)
	assert.Equal(t, int64(420_000_000), a.Market.EstimatedSalePrice)
	assert.Equal(t, models.HeatUnknown, a.Market.Heat)
	assert.Equal(t, 32, a.TotalScore)
	metrics.AssertExpectations(t)
}

func TestEngine_RegistryTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := market.NewClient(market.ClientConfig{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	e := newEngine(client, stubSource{})

	a, err := e.Assess(context.Background(), "서울 종로구 평창동", 50000)
	require.NoError(t, err)
	assert.Equal(t, models.DataSourceEstimated, a.Market.DataSource)
	assert.Equal(t, int64(700_000_000), a.Market.EstimatedSalePrice)
	assert.Equal(t, int64(500_000_000), a.Market.EstimatedLeasePrice)
}

func TestEngine_EmptyComparablesUsesFullBatch(t *testing.T) {
	provider := &stubProvider{batch: &market.Batch{Transactions: rows("20260301", 20000, 30000, 40000)}}
	e := newEngine(provider, stubSource{})

	a, err := e.Assess(context.Background(), "서울 송파구 잠실동", 100)
	require.NoError(t, err)

	assert.Equal(t, models.DataSourceAuthoritative, a.Market.DataSource)
	assert.Equal(t, 3, a.Market.ComparableCount)
	assert.Equal(t, 3, a.Market.TransactionCount)
	assert.Equal(t, int64(30000), a.Market.AveragePrice)
	assert.Equal(t, 3, a.Market.RecentCount)
	assert.Equal(t, int64(300_000_000), a.Market.EstimatedLeasePrice)
	assert.Equal(t, int64(420_000_000), a.Market.EstimatedSalePrice)
}

func TestEngine_UnusableBatchFallsBackToEstimate(t *testing.T) {
	batch := rows("20260301", 20000)
	batch[0].CancellationDate = "20260320"
	provider := &stubProvider{batch: &market.Batch{Transactions: batch, Skipped: 3}}

	metrics := new(MockMetrics)
	metrics.On("RecordSkippedRows", 3).Return().Once()
	metrics.On("RecordAssessment", mock.Anything, models.DataSourceEstimated, mock.Anything).Return().Once()

	e := newEngine(provider, stubSource{}, WithMetrics(metrics))
	a, err := e.Assess(context.Background(), "서울 중구", 20000)
	require.NoError(t, err)
	assert.True(t, a.Market.Estimated())
	metrics.AssertExpectations(t)
}

func TestEngine_AncillaryFailuresDegrade(t *testing.T) {
	metrics := new(MockMetrics)
	metrics.On("RecordAncillaryDegraded", "lien").Return().Once()
	metrics.On("RecordAncillaryDegraded", "incidents").Return().Once()
	metrics.On("RecordAssessment", mock.Anything, models.DataSourceAuthoritative, mock.Anything).Return().Once()

	provider := &stubProvider{batch: &market.Batch{Transactions: rows("20260301", 30000)}}
	source := stubSource{
		lien:      models.LienProfile{ArrearsAmount: 99},
		lienErr:   errors.New("registry offline"),
		incidents: 9,
		incErr:    errors.New("registry offline"),
	}
	e := newEngine(provider, source, WithMetrics(metrics))

	a, err := e.Assess(context.Background(), "서울 용산구 한남동", 30000)
	require.NoError(t, err)
	assert.Equal(t, models.LienProfile{}, a.Lien)
	assert.Equal(t, 0, a.NearbyIncidents)
	assert.Equal(t, 0, a.SubScores.Structural)
	assert.Equal(t, 0, a.SubScores.Neighborhood)
	metrics.AssertExpectations(t)
}

func TestEngine_PageSizeOption(t *testing.T) {
	provider := &stubProvider{err: market.ErrUpstreamUnavailable}
	e := newEngine(provider, stubSource{}, WithPageSize(50))

	_, err := e.Assess(context.Background(), "서울 중구", 1000)
	require.NoError(t, err)
	assert.Equal(t, 50, provider.query.End)
}

func TestEngine_Idempotent(t *testing.T) {
	provider := &stubProvider{batch: &market.Batch{Transactions: rows("20260301", 28000, 31000, 29500)}}
	source := stubSource{lien: models.LienProfile{ArrearsAmount: 23_000_000, SeniorLienRatioPct: 80, ArrearsCategory: "national tax"}, incidents: 3}
	e := newEngine(provider, source)

	first, err := e.Assess(context.Background(), "서울 강남구 역삼동", 30000)
	require.NoError(t, err)
	second, err := e.Assess(context.Background(), "서울 강남구 역삼동", 30000)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Assess not deterministic (-first +second):\n%s", diff)
	}
}
