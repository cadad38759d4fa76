package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetTokenDetails(ctx context.Context, refID string) (*domain.PriceQuote, error) {
	args := m.Called(ctx, refID)
	q, _ := args.Get(0).(*domain.PriceQuote)
	return q, args.Error(1)
}

func (m *mockProvider) GetTokenPrices(ctx context.Context, refIDs []string) (map[string]domain.PriceQuote, error) {
	args := m.Called(ctx, refIDs)
	q, _ := args.Get(0).(map[string]domain.PriceQuote)
	return q, args.Error(1)
}

type memoryStore struct {
	quotes  map[string]domain.PriceQuote
	getErr  error
	lastTTL time.Duration
}

func (s *memoryStore) GetQuotes(_ context.Context, refIDs []string) (map[string]domain.PriceQuote, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	out := map[string]domain.PriceQuote{}
	for _, id := range refIDs {
		if q, ok := s.quotes[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (s *memoryStore) SetQuotes(_ context.Context, quotes map[string]domain.PriceQuote, ttl time.Duration) error {
	for id, q := range quotes {
		s.quotes[id] = q
	}
	s.lastTTL = ttl
	return nil
}

func quote(id string, price int64) domain.PriceQuote {
	return domain.PriceQuote{RefID: id, Currency: "usd", Price: decimal.NewFromInt(price)}
}

func TestCachedProvider_FetchesOnlyMisses(t *testing.T) {
	store := &memoryStore{quotes: map[string]domain.PriceQuote{"bitcoin": quote("bitcoin", 60000)}}
	upstream := new(mockProvider)
	upstream.On("GetTokenPrices", mock.Anything, []string{"ethereum"}).
		Return(map[string]domain.PriceQuote{"ethereum": quote("ethereum", 3000)}, nil).Once()

	p := NewCachedProvider(upstream, store, time.Minute)
	quotes, err := p.GetTokenPrices(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
	assert.Contains(t, store.quotes, "ethereum")
	assert.Equal(t, time.Minute, store.lastTTL)

	// Second call is served from the store entirely.
	quotes, err = p.GetTokenPrices(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
	upstream.AssertExpectations(t)
}

func TestCachedProvider_StoreFailureFallsThrough(t *testing.T) {
	store := &memoryStore{quotes: map[string]domain.PriceQuote{}, getErr: errors.New("redis down")}
	upstream := new(mockProvider)
	upstream.On("GetTokenPrices", mock.Anything, []string{"bitcoin"}).
		Return(map[string]domain.PriceQuote{"bitcoin": quote("bitcoin", 1)}, nil)

	quotes, err := NewCachedProvider(upstream, store, time.Minute).GetTokenPrices(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)
	assert.Contains(t, quotes, "bitcoin")
}

func TestCachedProvider_UpstreamErrorPropagates(t *testing.T) {
	store := &memoryStore{quotes: map[string]domain.PriceQuote{}}
	upstream := new(mockProvider)
	upstream.On("GetTokenPrices", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewCachedProvider(upstream, store, time.Minute).GetTokenPrices(context.Background(), []string{"x"})
	assert.EqualError(t, err, "boom")
}

func TestCachedProvider_DetailsBypassCache(t *testing.T) {
	q := quote("bitcoin", 5)
	upstream := new(mockProvider)
	upstream.On("GetTokenDetails", mock.Anything, "bitcoin").Return(&q, nil)

	got, err := NewCachedProvider(upstream, &memoryStore{quotes: map[string]domain.PriceQuote{}}, time.Minute).
		GetTokenDetails(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, &q, got)
}
