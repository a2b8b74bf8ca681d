// Package yahoo is the quote source adapter: a Yahoo Finance chart API
// client that turns raw chart responses into the app's Quote and
// HistoricalPrice types.
//
// All caching, rate limiting, and retrying lives here, behind the adapter
// boundary. The valuation core receives plain snapshots and never learns
// where they came from or how stale they almost were.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

const (
	baseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

	// usdJpySymbol is the chart symbol for the USD/JPY exchange rate.
	usdJpySymbol = "USDJPY=X"

	// FallbackUsdJpyRate is used when the exchange rate cannot be fetched.
	FallbackUsdJpyRate = 150.0

	// rateCacheTTL keeps a fetched exchange rate fresh for an hour.
	rateCacheTTL = time.Hour
)

// FinanceClient fetches quotes, price history, and the USD/JPY exchange rate
// from the Yahoo Finance chart API. Fetched quotes are cached briefly and
// the exchange rate for an hour; outbound requests are rate limited and
// retried with exponential backoff on transport failures.
type FinanceClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *gocache.Cache
	quoteTTL   time.Duration
}

// NewFinanceClient creates a client with the given request-per-second cap and
// quote cache TTL.
func NewFinanceClient(requestsPerSecond float64, quoteTTL time.Duration) *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		cache:      gocache.New(quoteTTL, 10*time.Minute),
		quoteTTL:   quoteTTL,
	}
}

// GetQuote fetches the current price snapshot for a symbol.
// Price comes from the chart meta's regularMarketPrice; previous close falls
// back from previousClose to chartPreviousClose, matching what the chart API
// actually populates per asset class.
func (c *FinanceClient) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	cacheKey := "quote:" + symbol
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(model.Quote), nil
	}

	reqURL := fmt.Sprintf("%s/%s?interval=1d&range=1d", baseURL, url.PathEscape(symbol))
	response, err := c.queryYahoo(ctx, reqURL)
	if err != nil {
		return model.Quote{}, err
	}
	if len(response.Chart.Result) == 0 {
		return model.Quote{}, fmt.Errorf("%w: %s", apperrors.ErrQuoteNotFound, symbol)
	}

	meta := response.Chart.Result[0].Meta

	name := meta.ShortName
	if name == "" {
		name = meta.LongName
	}
	if name == "" {
		name = symbol
	}

	previousClose := meta.PreviousClose
	if previousClose == 0 {
		previousClose = meta.ChartPreviousClose
	}

	change := meta.RegularMarketPrice - previousClose
	changePercent := 0.0
	if previousClose != 0 {
		changePercent = change / previousClose * 100
	}

	quote := model.Quote{
		Symbol:        meta.Symbol,
		Name:          name,
		Price:         meta.RegularMarketPrice,
		PreviousClose: previousClose,
		Change:        change,
		ChangePercent: changePercent,
		Currency:      model.Currency(meta.Currency),
		Timestamp:     time.Unix(meta.RegularMarketTime, 0).UTC(),
	}

	c.cache.Set(cacheKey, quote, c.quoteTTL)
	return quote, nil
}

// GetHistory fetches daily price history for a symbol over one of the
// supported ranges (1d, 5d, 1mo, 3mo, 6mo, 1y, 5y). The result is ascending
// by date; rows whose close price is missing are dropped. An empty upstream
// result yields an empty slice, not an error.
func (c *FinanceClient) GetHistory(ctx context.Context, symbol, historyRange string) ([]model.HistoricalPrice, error) {
	if !ValidRanges[historyRange] {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidRange, historyRange)
	}

	reqURL := fmt.Sprintf("%s/%s?interval=1d&range=%s", baseURL, url.PathEscape(symbol), historyRange)
	response, err := c.queryYahoo(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if len(response.Chart.Result) == 0 {
		return []model.HistoricalPrice{}, nil
	}

	result := response.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return []model.HistoricalPrice{}, nil
	}
	quote := result.Indicators.Quote[0]
	if len(quote.Close) != len(result.Timestamp) {
		return nil, fmt.Errorf("mismatched data lengths for %s", symbol)
	}

	history := make([]model.HistoricalPrice, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if quote.Close[i] == nil {
			continue
		}
		point := model.HistoricalPrice{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			point.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			point.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			point.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			point.Volume = *quote.Volume[i]
		}
		history = append(history, point)
	}

	return history, nil
}

// GetUsdJpyRate returns the current USD/JPY exchange rate.
// The rate is cached for an hour. When the fetch fails or returns a
// non-positive price, the agreed fallback constant is returned instead of an
// error: a slightly stale or approximate rate keeps the dashboard usable,
// which beats failing the whole valuation.
func (c *FinanceClient) GetUsdJpyRate(ctx context.Context) float64 {
	const cacheKey = "rate:USDJPY"
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(float64)
	}

	quote, err := c.GetQuote(ctx, usdJpySymbol)
	if err != nil || quote.Price <= 0 {
		return FallbackUsdJpyRate
	}

	c.cache.Set(cacheKey, quote.Price, rateCacheTTL)
	return quote.Price
}

// queryYahoo executes a rate-limited HTTP request against the chart API,
// retrying transport failures with exponential backoff. API-level errors
// (a populated Chart.Error) are not retried; the upstream already answered.
func (c *FinanceClient) queryYahoo(ctx context.Context, reqURL string) (Response, error) {
	var response Response

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return retry.RetryableError(fmt.Errorf("yahoo returned status %d", resp.StatusCode))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}

		response = Response{}
		if err := json.Unmarshal(data, &response); err != nil {
			return fmt.Errorf("failed to parse yahoo response: %w", err)
		}
		if response.Chart.Error != nil {
			return fmt.Errorf("yahoo error: %s: %s",
				response.Chart.Error.Code, response.Chart.Error.Description)
		}
		return nil
	})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveQuote, err)
	}

	return response, nil
}
