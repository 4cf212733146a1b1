package financials

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"obra/internal/domain/rates"
	"obra/internal/domain/wages"
)

type Service struct {
	store StoreAPI
	rates *rates.Resolver
	wages *wages.Resolver
}

func NewService(store StoreAPI, rateResolver *rates.Resolver, wageResolver *wages.Resolver) *Service {
	return &Service{store: store, rates: rateResolver, wages: wageResolver}
}

// ProjectYear computes the profit-and-loss statement for one project and one
// calendar year. Currency conversion degrades through the record's own rate,
// the historical feed, and the global default; it never fails the
// aggregation.
func (s *Service) ProjectYear(ctx context.Context, projectID string, year int) (ProjectFinancials, error) {
	if strings.TrimSpace(projectID) == "" {
		return ProjectFinancials{}, ErrProjectInvalid
	}
	if year < 1 {
		return ProjectFinancials{}, ErrYearInvalid
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	var in Inputs
	var err error
	if in.Sales, err = s.store.ListSales(ctx, projectID, from, to); err != nil {
		return ProjectFinancials{}, err
	}
	if in.Expenses, err = s.store.ListExpenses(ctx, projectID, from, to); err != nil {
		return ProjectFinancials{}, err
	}
	if in.StockMovements, err = s.store.ListStockMovements(ctx, projectID, from, to); err != nil {
		return ProjectFinancials{}, err
	}
	if in.Certifications, err = s.store.ListCertifications(ctx, projectID, from, to); err != nil {
		return ProjectFinancials{}, err
	}
	if in.FundRequests, err = s.store.ListFundRequests(ctx, projectID, from, to); err != nil {
		return ProjectFinancials{}, err
	}
	if in.Attendances, err = s.store.ListAttendance(ctx, projectID, from, to); err != nil {
		return ProjectFinancials{}, err
	}

	wageFor := func(employeeID string, date time.Time) (wages.Wage, error) {
		return s.wages.Resolve(ctx, employeeID, date)
	}
	convert := func(amount decimal.Decimal, currency string, ownRate decimal.Decimal, date time.Time) decimal.Decimal {
		return s.rates.ConvertAt(ctx, amount, currency, ownRate, date)
	}

	return Compute(in, wageFor, convert)
}
