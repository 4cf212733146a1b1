package financials

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"obra/internal/domain/payroll"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListSales(ctx context.Context, projectID string, from, to time.Time) ([]Sale, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT project_id, date, total_amount, status
    FROM sales
    WHERE project_id = $1 AND date BETWEEN $2 AND $3
  `, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []Sale
	for rows.Next() {
		var sale Sale
		if err := rows.Scan(&sale.ProjectID, &sale.Date, &sale.TotalAmount, &sale.Status); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func (s *Store) ListExpenses(ctx context.Context, projectID string, from, to time.Time) ([]Expense, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, project_id, date, COALESCE(supplier_id, ''), amount, currency, exchange_rate, status
    FROM expenses
    WHERE project_id = $1 AND date BETWEEN $2 AND $3
  `, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var expense Expense
		if err := rows.Scan(&expense.ID, &expense.ProjectID, &expense.Date, &expense.SupplierID, &expense.Amount, &expense.Currency, &expense.ExchangeRate, &expense.Status); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (s *Store) ListStockMovements(ctx context.Context, projectID string, from, to time.Time) ([]StockMovement, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT project_id, type, date, total_cost
    FROM stock_movements
    WHERE project_id = $1 AND date BETWEEN $2 AND $3
  `, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []StockMovement
	for rows.Next() {
		var movement StockMovement
		if err := rows.Scan(&movement.ProjectID, &movement.Type, &movement.Date, &movement.TotalCost); err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}
	return movements, rows.Err()
}

func (s *Store) ListCertifications(ctx context.Context, projectID string, from, to time.Time) ([]payroll.Certification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT contractor_id, project_id, COALESCE(payroll_week_id, ''), date, amount, currency, status
    FROM contractor_certifications
    WHERE project_id = $1 AND date BETWEEN $2 AND $3
  `, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certifications []payroll.Certification
	for rows.Next() {
		var certification payroll.Certification
		if err := rows.Scan(&certification.ContractorID, &certification.ProjectID, &certification.WeekID, &certification.Date, &certification.Amount, &certification.Currency, &certification.Status); err != nil {
			return nil, err
		}
		certifications = append(certifications, certification)
	}
	return certifications, rows.Err()
}

func (s *Store) ListFundRequests(ctx context.Context, projectID string, from, to time.Time) ([]payroll.FundRequest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT project_id, COALESCE(payroll_week_id, ''), date, amount, currency, exchange_rate, status
    FROM fund_requests
    WHERE project_id = $1 AND date BETWEEN $2 AND $3
  `, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []payroll.FundRequest
	for rows.Next() {
		var request payroll.FundRequest
		if err := rows.Scan(&request.ProjectID, &request.WeekID, &request.Date, &request.Amount, &request.Currency, &request.ExchangeRate, &request.Status); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (s *Store) ListAttendance(ctx context.Context, projectID string, from, to time.Time) ([]payroll.Attendance, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, project_id, date, status, late_hours, payroll_week_id
    FROM attendance
    WHERE project_id = $1 AND date BETWEEN $2 AND $3
  `, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []payroll.Attendance
	for rows.Next() {
		var attendance payroll.Attendance
		if err := rows.Scan(&attendance.EmployeeID, &attendance.ProjectID, &attendance.Date, &attendance.Status, &attendance.LateHours, &attendance.WeekID); err != nil {
			return nil, err
		}
		attendances = append(attendances, attendance)
	}
	return attendances, rows.Err()
}
