package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyLocal   = "ARS"
	CurrencyForeign = "USD"

	// SettingDefaultRate is the settings key holding the last-resort
	// conversion rate used when neither a record nor the feed can supply one.
	SettingDefaultRate = "default_exchange_rate"
)

// Sample is one day's published sell rate for the foreign currency.
type Sample struct {
	Date time.Time       `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// Feed supplies the full published rate history in one call. The HTTP
// implementation lives in feed.go; tests inject synthetic feeds.
type Feed interface {
	FetchHistory(ctx context.Context) ([]Sample, error)
}

// SettingsStore reads scalar settings. Only the default exchange rate is
// needed here.
type SettingsStore interface {
	DecimalSetting(ctx context.Context, key string) (decimal.Decimal, bool, error)
}
