package payroll

import (
	"context"
	"strings"
	"time"

	"obra/internal/domain/wages"
)

type Service struct {
	store StoreAPI
	wages *wages.Resolver
}

func NewService(store StoreAPI, wageResolver *wages.Resolver) *Service {
	return &Service{store: store, wages: wageResolver}
}

// WeeklySummary computes the net obligation for one payroll week. The result
// is a pure function of the stored records at query time; nothing is
// persisted.
func (s *Service) WeeklySummary(ctx context.Context, weekID string) (WeeklySummary, error) {
	if strings.TrimSpace(weekID) == "" {
		return WeeklySummary{}, ErrWeekInvalid
	}

	week, err := s.store.GetWeek(ctx, weekID)
	if err != nil {
		return WeeklySummary{}, err
	}

	attendances, err := s.store.ListAttendance(ctx, weekID)
	if err != nil {
		return WeeklySummary{}, err
	}
	advances, err := s.store.ListAdvances(ctx, weekID)
	if err != nil {
		return WeeklySummary{}, err
	}
	certifications, err := s.store.ListCertifications(ctx, weekID)
	if err != nil {
		return WeeklySummary{}, err
	}
	fundRequests, err := s.store.ListFundRequests(ctx, weekID)
	if err != nil {
		return WeeklySummary{}, err
	}

	wageFor := func(employeeID string, date time.Time) (wages.Wage, error) {
		return s.wages.Resolve(ctx, employeeID, date)
	}

	return Compute(week, attendances, advances, certifications, fundRequests, wageFor)
}
