package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const binanceTickerURL = "https://api.binance.com/api/v3/ticker/price"

// fetchTimeout bounds a single spot price request.
const fetchTimeout = 5 * time.Second

// BinanceFetcher implements Fetcher using the Binance public ticker API.
type BinanceFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewBinanceFetcher creates a fetcher with optional proxy support.
func NewBinanceFetcher(proxyURL string) *BinanceFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BinanceFetcher{
		BaseURL: binanceTickerURL,
		Client: &http.Client{
			Timeout:   fetchTimeout,
			Transport: transport,
		},
	}
}

func (f *BinanceFetcher) Name() string { return "binance" }

// tickerResponse is the expected JSON shape; the price arrives as a
// string-encoded decimal.
type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// FetchSpotPrice fetches the current spot price for a trading pair such as
// "SOLEUR".
func (f *BinanceFetcher) FetchSpotPrice(ctx context.Context, symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return 0, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch spot price: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("fetch spot price: status %d, body: %s", resp.StatusCode, string(body))
	}
	var ticker tickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&ticker); err != nil {
		return 0, fmt.Errorf("decode ticker: %w", err)
	}
	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", ticker.Price, err)
	}
	return price, nil
}
