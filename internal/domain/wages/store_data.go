package wages

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListHistory(ctx context.Context, employeeID string) ([]HistoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, effective_date, amount, created_at
    FROM wage_history
    WHERE employee_id = $1
    ORDER BY effective_date, created_at
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.EmployeeID, &entry.EffectiveDate, &entry.Amount, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) BaseDailyWage(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	var wage decimal.Decimal
	err := s.DB.QueryRow(ctx, `
    SELECT daily_wage
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&wage)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("employee %s: %w", employeeID, ErrEmployeeNotFound)
	}
	if err != nil {
		return decimal.Zero, err
	}
	return wage, nil
}
