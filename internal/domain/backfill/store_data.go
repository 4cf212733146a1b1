package backfill

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"obra/internal/domain/financials"
	"obra/internal/domain/rates"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListProjectIDs(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, `SELECT id FROM projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) ListSuspectExpenses(ctx context.Context, projectID string, threshold decimal.Decimal) ([]financials.Expense, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, project_id, date, COALESCE(supplier_id, ''), amount, currency, exchange_rate, status
    FROM expenses
    WHERE project_id = $1 AND currency = $2 AND exchange_rate <= $3
    ORDER BY date, id
  `, projectID, rates.CurrencyLocal, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []financials.Expense
	for rows.Next() {
		var expense financials.Expense
		if err := rows.Scan(&expense.ID, &expense.ProjectID, &expense.Date, &expense.SupplierID, &expense.Amount, &expense.Currency, &expense.ExchangeRate, &expense.Status); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (s *Store) ApplyRateUpdates(ctx context.Context, updates []RateUpdate) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	for _, update := range updates {
		if _, err := tx.Exec(ctx, `
      UPDATE expenses
      SET exchange_rate = $1
      WHERE id = $2
    `, update.NewRate, update.ExpenseID); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) CreateRun(ctx context.Context, runID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO backfill_runs (id, status)
    VALUES ($1, $2)
  `, runID, RunStatusRunning)
	return err
}

func (s *Store) FinishRun(ctx context.Context, runID, status string, result Result) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE backfill_runs
    SET status = $1, scanned = $2, updated = $3, completed_at = now()
    WHERE id = $4
  `, status, result.Scanned, result.Updated, runID)
	return err
}
