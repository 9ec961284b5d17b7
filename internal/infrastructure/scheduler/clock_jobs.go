package scheduler

import (
	"context"
	"time"
)

const clockReconcileJob = "match_clock_reconcile"

// ClockReconciler starts and stops match tickers from stored match state.
type ClockReconciler interface {
	Reconcile(ctx context.Context) error
}

// RegisterClockJobs keeps tickers in line with matches edited outside this
// process, such as another API instance or a direct database write.
func RegisterClockJobs(s *Scheduler, hub ClockReconciler, interval time.Duration) error {
	return s.Every(clockReconcileJob, interval, interval, hub.Reconcile)
}
