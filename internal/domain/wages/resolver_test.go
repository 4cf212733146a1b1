package wages

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeStore struct {
	history map[string][]HistoryEntry
	base    map[string]decimal.Decimal
}

func (f *fakeStore) ListHistory(ctx context.Context, employeeID string) ([]HistoryEntry, error) {
	return f.history[employeeID], nil
}

func (f *fakeStore) BaseDailyWage(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	return f.base[employeeID], nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePicksLatestApplicableChange(t *testing.T) {
	store := &fakeStore{
		history: map[string][]HistoryEntry{
			"emp-1": {
				{EmployeeID: "emp-1", EffectiveDate: day(2025, time.January, 1), Amount: decimal.NewFromInt(2000)},
				{EmployeeID: "emp-1", EffectiveDate: day(2025, time.March, 1), Amount: decimal.NewFromInt(2500)},
				{EmployeeID: "emp-1", EffectiveDate: day(2025, time.June, 1), Amount: decimal.NewFromInt(3000)},
			},
		},
	}
	resolver := NewResolver(store)

	// Any date in [March 1, June 1) pays the March wage.
	for _, date := range []time.Time{day(2025, time.March, 1), day(2025, time.April, 15), day(2025, time.May, 31)} {
		wage, err := resolver.Resolve(context.Background(), "emp-1", date)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if !wage.Daily.Equal(decimal.NewFromInt(2500)) {
			t.Fatalf("date %s: expected daily 2500, got %s", date.Format("2006-01-02"), wage.Daily)
		}
	}

	wage, err := resolver.Resolve(context.Background(), "emp-1", day(2025, time.June, 2))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !wage.Daily.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected daily 3000 after June change, got %s", wage.Daily)
	}
}

func TestResolveFallsBackToBaseWage(t *testing.T) {
	store := &fakeStore{
		history: map[string][]HistoryEntry{},
		base:    map[string]decimal.Decimal{"emp-2": decimal.NewFromInt(2500)},
	}
	resolver := NewResolver(store)

	wage, err := resolver.Resolve(context.Background(), "emp-2", day(2025, time.May, 1))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !wage.Daily.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("expected base daily 2500, got %s", wage.Daily)
	}
	if !wage.Hourly.Equal(decimal.RequireFromString("312.5")) {
		t.Fatalf("expected hourly 312.5, got %s", wage.Hourly)
	}
}

func TestResolveHistoryBeforeDateOnly(t *testing.T) {
	store := &fakeStore{
		history: map[string][]HistoryEntry{
			"emp-3": {
				{EmployeeID: "emp-3", EffectiveDate: day(2025, time.August, 1), Amount: decimal.NewFromInt(4000)},
			},
		},
		base: map[string]decimal.Decimal{"emp-3": decimal.NewFromInt(1800)},
	}
	resolver := NewResolver(store)

	wage, err := resolver.Resolve(context.Background(), "emp-3", day(2025, time.July, 1))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !wage.Daily.Equal(decimal.NewFromInt(1800)) {
		t.Fatalf("future-only history: expected base 1800, got %s", wage.Daily)
	}
}

func TestPickEffectiveTieBreaksOnInsertionOrder(t *testing.T) {
	// Two changes on the same effective date: the one inserted last wins.
	entries := []HistoryEntry{
		{EffectiveDate: day(2025, time.April, 1), Amount: decimal.NewFromInt(2600), CreatedAt: day(2025, time.March, 28)},
		{EffectiveDate: day(2025, time.April, 1), Amount: decimal.NewFromInt(2700), CreatedAt: day(2025, time.March, 29)},
	}

	amount, ok := PickEffective(entries, day(2025, time.April, 10))
	if !ok {
		t.Fatal("expected an applicable entry")
	}
	if !amount.Equal(decimal.NewFromInt(2700)) {
		t.Fatalf("expected 2700 (inserted last), got %s", amount)
	}
}
