package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// HTTPFeed fetches the published sell-rate history. The endpoint takes no
// date-range parameters; the whole history comes back as one JSON array.
type HTTPFeed struct {
	url    string
	client *http.Client
}

func NewHTTPFeed(url string, timeout time.Duration) *HTTPFeed {
	return &HTTPFeed{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type feedEntry struct {
	Date     string          `json:"date"`
	SellRate decimal.Decimal `json:"sellRate"`
}

func (f *HTTPFeed) FetchHistory(ctx context.Context) ([]Sample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate feed returned status %d", res.StatusCode)
	}

	var entries []feedEntry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("rate feed decode failed: %w", err)
	}

	samples := make([]Sample, 0, len(entries))
	for _, entry := range entries {
		date, err := time.Parse(dateKeyLayout, entry.Date)
		if err != nil {
			// Skip malformed rows rather than rejecting the whole history.
			continue
		}
		samples = append(samples, Sample{Date: date, Rate: entry.SellRate})
	}
	return samples, nil
}
