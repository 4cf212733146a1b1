package backfill

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"obra/internal/domain/financials"
	"obra/internal/domain/rates"
)

type fakeFeed struct {
	samples []rates.Sample
}

func (f *fakeFeed) FetchHistory(ctx context.Context) ([]rates.Sample, error) {
	return f.samples, nil
}

type fakeStore struct {
	projects   []string
	expenses   map[string][]financials.Expense
	applyCalls int
	applyErr   error
	runs       map[string]string
}

func (f *fakeStore) ListProjectIDs(ctx context.Context) ([]string, error) {
	return f.projects, nil
}

func (f *fakeStore) ListSuspectExpenses(ctx context.Context, projectID string, threshold decimal.Decimal) ([]financials.Expense, error) {
	var suspects []financials.Expense
	for _, expense := range f.expenses[projectID] {
		if expense.Currency == rates.CurrencyLocal && expense.ExchangeRate.LessThanOrEqual(threshold) {
			suspects = append(suspects, expense)
		}
	}
	return suspects, nil
}

func (f *fakeStore) ApplyRateUpdates(ctx context.Context, updates []RateUpdate) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applyCalls++
	for _, update := range updates {
		for projectID, expenses := range f.expenses {
			for i := range expenses {
				if expenses[i].ID == update.ExpenseID {
					f.expenses[projectID][i].ExchangeRate = update.NewRate
				}
			}
		}
	}
	return nil
}

func (f *fakeStore) CreateRun(ctx context.Context, runID string) error {
	if f.runs == nil {
		f.runs = map[string]string{}
	}
	f.runs[runID] = RunStatusRunning
	return nil
}

func (f *fakeStore) FinishRun(ctx context.Context, runID, status string, result Result) error {
	f.runs[runID] = status
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func localExpense(id string, date time.Time, rate int64) financials.Expense {
	return financials.Expense{
		ID:           id,
		ProjectID:    "p1",
		Date:         date,
		Amount:       decimal.NewFromInt(1000),
		Currency:     rates.CurrencyLocal,
		ExchangeRate: decimal.NewFromInt(rate),
	}
}

func newTestJob(store StoreAPI, feed rates.Feed, batchSize int) *Job {
	resolver := rates.NewResolver(feed, nil, decimal.NewFromInt(1000), decimal.NewFromInt(5), testLogger())
	return NewJob(store, resolver, batchSize, testLogger())
}

func TestRunCorrectsSuspectRates(t *testing.T) {
	feed := &fakeFeed{samples: []rates.Sample{
		{Date: day(2025, time.February, 1), Rate: decimal.NewFromInt(1150)},
	}}
	store := &fakeStore{
		projects: []string{"p1"},
		expenses: map[string][]financials.Expense{
			"p1": {
				localExpense("x1", day(2025, time.February, 1), 0),
				localExpense("x2", day(2025, time.February, 3), 1),
				localExpense("x3", day(2025, time.February, 3), 1150),
			},
		},
	}
	job := newTestJob(store, feed, 400)

	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Scanned != 2 {
		t.Fatalf("expected 2 scanned, got %d", result.Scanned)
	}
	if result.Updated != 2 {
		t.Fatalf("expected 2 updated, got %d", result.Updated)
	}

	for _, expense := range store.expenses["p1"][:2] {
		if !expense.ExchangeRate.Equal(decimal.NewFromInt(1150)) {
			t.Fatalf("expense %s: expected corrected rate 1150, got %s", expense.ID, expense.ExchangeRate)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	feed := &fakeFeed{samples: []rates.Sample{
		{Date: day(2025, time.February, 1), Rate: decimal.NewFromInt(1150)},
	}}
	store := &fakeStore{
		projects: []string{"p1"},
		expenses: map[string][]financials.Expense{
			"p1": {
				localExpense("x1", day(2025, time.February, 1), 0),
				localExpense("x2", day(2025, time.February, 2), 1),
			},
		},
	}
	job := newTestJob(store, feed, 400)

	first, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.Updated != 2 {
		t.Fatalf("expected 2 updates on first run, got %d", first.Updated)
	}

	second, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.Updated != 0 {
		t.Fatalf("expected 0 updates on second run, got %d", second.Updated)
	}
}

func TestRunSkipsWhenFeedHasNoPlausibleAnswer(t *testing.T) {
	// Empty feed: the resolver returns the sentinel and nothing is rewritten.
	store := &fakeStore{
		projects: []string{"p1"},
		expenses: map[string][]financials.Expense{
			"p1": {localExpense("x1", day(2025, time.February, 1), 0)},
		},
	}
	job := newTestJob(store, &fakeFeed{}, 400)

	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Updated != 0 {
		t.Fatalf("expected no updates without feed coverage, got %d", result.Updated)
	}
	if result.Scanned != 1 {
		t.Fatalf("expected 1 scanned, got %d", result.Scanned)
	}
}

func TestRunFlushesInBoundedBatches(t *testing.T) {
	feed := &fakeFeed{samples: []rates.Sample{
		{Date: day(2025, time.February, 1), Rate: decimal.NewFromInt(1150)},
	}}
	store := &fakeStore{
		projects: []string{"p1"},
		expenses: map[string][]financials.Expense{
			"p1": {
				localExpense("x1", day(2025, time.February, 1), 0),
				localExpense("x2", day(2025, time.February, 2), 0),
				localExpense("x3", day(2025, time.February, 3), 0),
			},
		},
	}
	job := newTestJob(store, feed, 2)

	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Updated != 3 {
		t.Fatalf("expected 3 updates, got %d", result.Updated)
	}
	if store.applyCalls != 2 {
		t.Fatalf("expected 2 batch commits for 3 updates at batch size 2, got %d", store.applyCalls)
	}
}

func TestRunReportsFailureAndKeepsGuardReleased(t *testing.T) {
	feed := &fakeFeed{samples: []rates.Sample{
		{Date: day(2025, time.February, 1), Rate: decimal.NewFromInt(1150)},
	}}
	store := &fakeStore{
		projects: []string{"p1"},
		expenses: map[string][]financials.Expense{
			"p1": {localExpense("x1", day(2025, time.February, 1), 0)},
		},
		applyErr: errors.New("commit failed"),
	}
	job := newTestJob(store, feed, 1)

	if _, err := job.Run(context.Background()); err == nil {
		t.Fatal("expected run to surface the commit failure")
	}
	if job.Running() {
		t.Fatal("expected the running guard to be released after failure")
	}

	// The guard must not block a retry.
	store.applyErr = nil
	if _, err := job.Run(context.Background()); err != nil {
		t.Fatalf("retry after failure should succeed, got %v", err)
	}
}
