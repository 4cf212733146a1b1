package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) GetWeek(ctx context.Context, weekID string) (Week, error) {
	var week Week
	err := s.DB.QueryRow(ctx, `
    SELECT id, start_date, end_date, status, exchange_rate
    FROM payroll_weeks
    WHERE id = $1
  `, weekID).Scan(&week.ID, &week.StartDate, &week.EndDate, &week.Status, &week.ExchangeRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Week{}, fmt.Errorf("week %s: %w", weekID, ErrWeekNotFound)
	}
	if err != nil {
		return Week{}, err
	}
	return week, nil
}

func (s *Store) ListAttendance(ctx context.Context, weekID string) ([]Attendance, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, project_id, date, status, late_hours, payroll_week_id
    FROM attendance
    WHERE payroll_week_id = $1
  `, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []Attendance
	for rows.Next() {
		var attendance Attendance
		if err := rows.Scan(&attendance.EmployeeID, &attendance.ProjectID, &attendance.Date, &attendance.Status, &attendance.LateHours, &attendance.WeekID); err != nil {
			return nil, err
		}
		attendances = append(attendances, attendance)
	}
	return attendances, rows.Err()
}

func (s *Store) ListAdvances(ctx context.Context, weekID string) ([]CashAdvance, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, payroll_week_id, amount, installments
    FROM cash_advances
    WHERE payroll_week_id = $1
  `, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advances []CashAdvance
	for rows.Next() {
		var advance CashAdvance
		if err := rows.Scan(&advance.EmployeeID, &advance.WeekID, &advance.Amount, &advance.Installments); err != nil {
			return nil, err
		}
		advances = append(advances, advance)
	}
	return advances, rows.Err()
}

func (s *Store) ListCertifications(ctx context.Context, weekID string) ([]Certification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT contractor_id, project_id, COALESCE(payroll_week_id, ''), date, amount, currency, status
    FROM contractor_certifications
    WHERE payroll_week_id = $1
  `, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certifications []Certification
	for rows.Next() {
		var certification Certification
		if err := rows.Scan(&certification.ContractorID, &certification.ProjectID, &certification.WeekID, &certification.Date, &certification.Amount, &certification.Currency, &certification.Status); err != nil {
			return nil, err
		}
		certifications = append(certifications, certification)
	}
	return certifications, rows.Err()
}

func (s *Store) ListFundRequests(ctx context.Context, weekID string) ([]FundRequest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT project_id, COALESCE(payroll_week_id, ''), date, amount, currency, exchange_rate, status
    FROM fund_requests
    WHERE payroll_week_id = $1
  `, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []FundRequest
	for rows.Next() {
		var request FundRequest
		if err := rows.Scan(&request.ProjectID, &request.WeekID, &request.Date, &request.Amount, &request.Currency, &request.ExchangeRate, &request.Status); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
