package rates

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	dateKeyLayout    = "2006-01-02"
	backwardScanDays = 7
)

// Resolver answers "what was the sell rate on this date". The cache is
// populated from the feed at most once per process, lazily on first use;
// after that every lookup is read-only, so concurrent callers need no
// further coordination.
type Resolver struct {
	feed         Feed
	settings     SettingsStore
	fallbackRate decimal.Decimal
	plausibleMin decimal.Decimal
	log          *logrus.Logger

	populateOnce sync.Once
	mu           sync.RWMutex
	cache        map[string]decimal.Decimal
	latestKey    string
}

func NewResolver(feed Feed, settings SettingsStore, fallbackRate, plausibleMin decimal.Decimal, log *logrus.Logger) *Resolver {
	return &Resolver{
		feed:         feed,
		settings:     settings,
		fallbackRate: fallbackRate,
		plausibleMin: plausibleMin,
		log:          log,
		cache:        map[string]decimal.Decimal{},
	}
}

// Resolve returns the rate in effect on date, or zero when the history gives
// no answer. Callers must treat zero as "cannot convert", never as a
// multiplier.
//
// Lookup order: exact day, then up to seven calendar days back, then the
// latest known rate when the date is at or past the end of the history.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) decimal.Decimal {
	r.populate(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	key := date.Format(dateKeyLayout)
	if rate, ok := r.cache[key]; ok {
		return rate
	}

	for i := 1; i <= backwardScanDays; i++ {
		earlier := date.AddDate(0, 0, -i).Format(dateKeyLayout)
		if rate, ok := r.cache[earlier]; ok {
			return rate
		}
	}

	if r.latestKey != "" && key >= r.latestKey {
		return r.cache[r.latestKey]
	}

	return decimal.Zero
}

// DefaultRate is the global last-resort rate: the settings value when
// present, else the configured fallback.
func (r *Resolver) DefaultRate(ctx context.Context) decimal.Decimal {
	if r.settings != nil {
		rate, ok, err := r.settings.DecimalSetting(ctx, SettingDefaultRate)
		if err != nil {
			r.log.WithError(err).Warn("default rate setting lookup failed")
		} else if ok && rate.IsPositive() {
			return rate
		}
	}
	return r.fallbackRate
}

// ConvertAt converts an amount recorded in the foreign currency to the local
// currency: a plausible rate stored on the record wins, then the historical
// rate for its date, then the global default. Amounts already in the local
// currency pass through unchanged.
func (r *Resolver) ConvertAt(ctx context.Context, amount decimal.Decimal, currency string, ownRate decimal.Decimal, date time.Time) decimal.Decimal {
	if currency != CurrencyForeign {
		return amount
	}
	if ownRate.GreaterThan(r.plausibleMin) {
		return amount.Mul(ownRate)
	}
	if resolved := r.Resolve(ctx, date); resolved.GreaterThan(r.plausibleMin) {
		return amount.Mul(resolved)
	}
	return amount.Mul(r.DefaultRate(ctx))
}

// PlausibleMin exposes the configured plausibility threshold; stored rates at
// or below it are treated as never set.
func (r *Resolver) PlausibleMin() decimal.Decimal {
	return r.plausibleMin
}

func (r *Resolver) populate(ctx context.Context) {
	r.populateOnce.Do(func() {
		samples, err := r.feed.FetchHistory(ctx)
		if err != nil {
			// Leave the cache empty: lookups return the zero sentinel and
			// callers degrade to the global default for this process.
			r.log.WithError(err).Warn("rate history fetch failed")
			return
		}

		r.mu.Lock()
		defer r.mu.Unlock()
		for _, sample := range samples {
			if !sample.Rate.IsPositive() {
				continue
			}
			key := sample.Date.Format(dateKeyLayout)
			r.cache[key] = sample.Rate
			if key > r.latestKey {
				r.latestKey = key
			}
		}
		r.log.WithField("days", len(r.cache)).Info("rate history cached")
	})
}
