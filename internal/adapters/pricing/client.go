// Package pricing talks to a CoinGecko compatible market data API.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/shopspring/decimal"
)

const (
	defaultAPIKeyHeader = "x-cg-demo-api-key"
	// maxIDsPerRequest keeps /simple/price URLs well under common length limits.
	maxIDsPerRequest = 100
)

// Options configures a Client.
type Options struct {
	BaseURL      string
	APIKey       string
	APIKeyHeader string
	Currency     string
	Timeout      time.Duration
	HTTPClient   *http.Client
}

// Client implements portssvc.PricingProvider over HTTP.
type Client struct {
	baseURL      string
	apiKey       string
	apiKeyHeader string
	currency     string
	http         *http.Client
}

var _ portssvc.PricingProvider = (*Client)(nil)

func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		apiKey:       opts.APIKey,
		apiKeyHeader: opts.APIKeyHeader,
		currency:     strings.ToLower(opts.Currency),
		http:         opts.HTTPClient,
	}
	if c.apiKeyHeader == "" {
		c.apiKeyHeader = defaultAPIKeyHeader
	}
	if c.currency == "" {
		c.currency = "usd"
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: opts.Timeout}
	}
	return c
}

type coinResponse struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Image  struct {
		Large string `json:"large"`
		Small string `json:"small"`
	} `json:"image"`
	MarketData struct {
		CurrentPrice             map[string]decimal.NullDecimal `json:"current_price"`
		MarketCap                map[string]decimal.NullDecimal `json:"market_cap"`
		PriceChangePercentage24h decimal.NullDecimal            `json:"price_change_percentage_24h"`
	} `json:"market_data"`
	LastUpdated *time.Time `json:"last_updated"`
}

// GetTokenDetails returns the full quote for one coin id. An unknown id is
// apperrors.ErrNotFound.
func (c *Client) GetTokenDetails(ctx context.Context, refID string) (*domain.PriceQuote, error) {
	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")

	var resp coinResponse
	if err := c.get(ctx, "/coins/"+url.PathEscape(refID), q, &resp); err != nil {
		return nil, err
	}

	price, ok := resp.MarketData.CurrentPrice[c.currency]
	if !ok || !price.Valid {
		return nil, fmt.Errorf("no %s price for %s: %w", c.currency, refID, apperrors.ErrNotFound)
	}

	quote := &domain.PriceQuote{
		RefID:       resp.ID,
		Symbol:      strings.ToUpper(resp.Symbol),
		Name:        resp.Name,
		Currency:    c.currency,
		Price:       price.Decimal,
		Change24h:   nullable(resp.MarketData.PriceChangePercentage24h),
		MarketCap:   nullable(resp.MarketData.MarketCap[c.currency]),
		LogoURL:     resp.Image.Large,
		LastUpdated: resp.LastUpdated,
	}
	if quote.LogoURL == "" {
		quote.LogoURL = resp.Image.Small
	}
	return quote, nil
}

// GetTokenPrices fetches quotes for refIDs in batches. Ids the provider does
// not know are left out of the result.
func (c *Client) GetTokenPrices(ctx context.Context, refIDs []string) (map[string]domain.PriceQuote, error) {
	quotes := make(map[string]domain.PriceQuote, len(refIDs))
	for start := 0; start < len(refIDs); start += maxIDsPerRequest {
		end := min(start+maxIDsPerRequest, len(refIDs))
		if err := c.fetchBatch(ctx, refIDs[start:end], quotes); err != nil {
			return nil, err
		}
	}
	return quotes, nil
}

func (c *Client) fetchBatch(ctx context.Context, ids []string, into map[string]domain.PriceQuote) error {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", c.currency)
	q.Set("include_24hr_change", "true")
	q.Set("include_market_cap", "true")
	q.Set("include_last_updated_at", "true")

	var resp map[string]map[string]decimal.NullDecimal
	if err := c.get(ctx, "/simple/price", q, &resp); err != nil {
		return err
	}

	for id, fields := range resp {
		price, ok := fields[c.currency]
		if !ok || !price.Valid {
			continue
		}
		quote := domain.PriceQuote{
			RefID:     id,
			Currency:  c.currency,
			Price:     price.Decimal,
			Change24h: nullable(fields[c.currency+"_24h_change"]),
			MarketCap: nullable(fields[c.currency+"_market_cap"]),
		}
		if ts, ok := fields["last_updated_at"]; ok && ts.Valid {
			t := time.Unix(ts.Decimal.IntPart(), 0).UTC()
			quote.LastUpdated = &t
		}
		into[id] = quote
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build pricing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(c.apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("pricing request failed: %w", err)
	}
	defer resp.Body.Close()

	middleware.GetLoggerFromCtx(ctx).Debug("Pricing request completed",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("pricing %s: %w", path, apperrors.ErrNotFound)
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pricing %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode pricing response: %w", err)
	}
	return nil
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
