package backfill

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"obra/internal/domain/rates"
)

// Job retroactively fixes the conversion rate stored on expense records using
// the historical feed. It is the only writer in the system: aggregations may
// run alongside it freely, but the job refuses to run alongside itself.
//
// Updates apply in bounded batches, one transaction each. A failure mid-scan
// keeps the batches already committed; rerunning is safe because a corrected
// record no longer matches the suspect filter.
type Job struct {
	store     StoreAPI
	rates     *rates.Resolver
	log       *logrus.Logger
	batchSize int
	running   atomic.Bool
}

func NewJob(store StoreAPI, rateResolver *rates.Resolver, batchSize int, log *logrus.Logger) *Job {
	return &Job{
		store:     store,
		rates:     rateResolver,
		log:       log,
		batchSize: batchSize,
	}
}

// Running reports whether a run is in flight.
func (j *Job) Running() bool {
	return j.running.Load()
}

func (j *Job) Run(ctx context.Context) (Result, error) {
	if !j.running.CompareAndSwap(false, true) {
		return Result{}, ErrAlreadyRunning
	}
	defer j.running.Store(false)

	runID := uuid.NewString()
	if err := j.store.CreateRun(ctx, runID); err != nil {
		j.log.WithError(err).Warn("backfill run insert failed")
	}

	result, err := j.scan(ctx)

	status := RunStatusCompleted
	if err != nil {
		status = RunStatusFailed
	}
	if finishErr := j.store.FinishRun(ctx, runID, status, result); finishErr != nil {
		j.log.WithError(finishErr).Warn("backfill run update failed")
	}
	j.log.WithFields(logrus.Fields{
		"runId":   runID,
		"status":  status,
		"scanned": result.Scanned,
		"updated": result.Updated,
	}).Info("rate backfill finished")

	return result, err
}

func (j *Job) scan(ctx context.Context) (Result, error) {
	var result Result
	threshold := j.rates.PlausibleMin()

	projectIDs, err := j.store.ListProjectIDs(ctx)
	if err != nil {
		return result, err
	}

	var batch []RateUpdate
	for _, projectID := range projectIDs {
		expenses, err := j.store.ListSuspectExpenses(ctx, projectID, threshold)
		if err != nil {
			return result, err
		}

		for _, expense := range expenses {
			result.Scanned++

			resolved := j.rates.Resolve(ctx, expense.Date)
			if !resolved.GreaterThan(threshold) {
				// The feed has no plausible answer either; leave the record
				// alone rather than trading one bad rate for another.
				continue
			}
			if resolved.Equal(expense.ExchangeRate) {
				continue
			}

			batch = append(batch, RateUpdate{
				ExpenseID: expense.ID,
				OldRate:   expense.ExchangeRate,
				NewRate:   resolved,
			})

			if len(batch) >= j.batchSize {
				if err := j.flush(ctx, batch, &result); err != nil {
					return result, err
				}
				batch = nil
			}
		}
	}

	if len(batch) > 0 {
		if err := j.flush(ctx, batch, &result); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (j *Job) flush(ctx context.Context, batch []RateUpdate, result *Result) error {
	if err := j.store.ApplyRateUpdates(ctx, batch); err != nil {
		return err
	}
	for _, update := range batch {
		j.log.WithFields(logrus.Fields{
			"expenseId": update.ExpenseID,
			"oldRate":   update.OldRate.String(),
			"newRate":   update.NewRate.String(),
		}).Info("expense rate corrected")
	}
	result.Updated += len(batch)
	return nil
}
