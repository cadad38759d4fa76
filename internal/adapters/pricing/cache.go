package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const cacheNamespace = "price"

// QuoteStore keeps recently fetched quotes.
type QuoteStore interface {
	// GetQuotes returns the cached quotes among refIDs; misses are absent.
	GetQuotes(ctx context.Context, refIDs []string) (map[string]domain.PriceQuote, error)
	SetQuotes(ctx context.Context, quotes map[string]domain.PriceQuote, ttl time.Duration) error
}

// RedisQuoteStore stores quotes as JSON under "price:<currency>:<refID>".
type RedisQuoteStore struct {
	client   redis.UniversalClient
	currency string
}

func NewRedisQuoteStore(client redis.UniversalClient, currency string) *RedisQuoteStore {
	return &RedisQuoteStore{client: client, currency: currency}
}

func (s *RedisQuoteStore) key(refID string) string {
	return cacheNamespace + ":" + s.currency + ":" + refID
}

func (s *RedisQuoteStore) GetQuotes(ctx context.Context, refIDs []string) (map[string]domain.PriceQuote, error) {
	if len(refIDs) == 0 {
		return map[string]domain.PriceQuote{}, nil
	}
	keys := make([]string, len(refIDs))
	for i, id := range refIDs {
		keys[i] = s.key(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cached quotes: %w", err)
	}

	quotes := make(map[string]domain.PriceQuote, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // miss
		}
		var q domain.PriceQuote
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			continue
		}
		quotes[refIDs[i]] = q
	}
	return quotes, nil
}

func (s *RedisQuoteStore) SetQuotes(ctx context.Context, quotes map[string]domain.PriceQuote, ttl time.Duration) error {
	if len(quotes) == 0 {
		return nil
	}
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for id, q := range quotes {
			raw, err := json.Marshal(q)
			if err != nil {
				return err
			}
			pipe.Set(ctx, s.key(id), raw, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache quotes: %w", err)
	}
	return nil
}

// CachedProvider serves batch prices from a QuoteStore and only asks the
// upstream provider for misses. Cache failures fall through to upstream.
type CachedProvider struct {
	next  portssvc.PricingProvider
	store QuoteStore
	ttl   time.Duration
}

var _ portssvc.PricingProvider = (*CachedProvider)(nil)

func NewCachedProvider(next portssvc.PricingProvider, store QuoteStore, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, store: store, ttl: ttl}
}

// GetTokenDetails is not cached: callers ask for it one token at a time and
// expect the full record.
func (p *CachedProvider) GetTokenDetails(ctx context.Context, refID string) (*domain.PriceQuote, error) {
	return p.next.GetTokenDetails(ctx, refID)
}

func (p *CachedProvider) GetTokenPrices(ctx context.Context, refIDs []string) (map[string]domain.PriceQuote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cached, err := p.store.GetQuotes(ctx, refIDs)
	if err != nil {
		logger.Warn("Price cache unavailable", slog.String("error", err.Error()))
		cached = map[string]domain.PriceQuote{}
	}

	var misses []string
	for _, id := range refIDs {
		if _, ok := cached[id]; !ok {
			misses = append(misses, id)
		}
	}
	if len(misses) == 0 {
		return cached, nil
	}

	fresh, err := p.next.GetTokenPrices(ctx, misses)
	if err != nil {
		return nil, err
	}
	if err := p.store.SetQuotes(ctx, fresh, p.ttl); err != nil {
		logger.Warn("Failed to store fetched prices", slog.String("error", err.Error()))
	}

	for id, q := range fresh {
		cached[id] = q
	}
	logger.Debug("Prices resolved",
		slog.Int("cache_hits", len(refIDs)-len(misses)),
		slog.Int("fetched", len(fresh)))
	return cached, nil
}
