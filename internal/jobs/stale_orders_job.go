package jobs

import (
	"context"
	"log/slog"
	"time"

	"taxi/internal/core/application/usecases/queries"
	"taxi/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

type staleOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetStaleOrdersQuery) ([]queries.GetStaleOrdersQueryResponse, error)
}

// StaleOrdersJob periodically reports open orders whose status has not changed
// for longer than the configured threshold.
type StaleOrdersJob struct {
	handler  staleOrdersHandler
	query    queries.GetStaleOrdersQuery
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrdersJob creates the job. schedule is a six field cron expression
// (seconds first).
func NewStaleOrdersJob(
	handler staleOrdersHandler,
	olderThan time.Duration,
	schedule string,
	logger *slog.Logger,
) (*StaleOrdersJob, error) {
	query, err := queries.NewGetStaleOrdersQuery(olderThan)
	if err != nil {
		return nil, err
	}

	return &StaleOrdersJob{
		handler:  handler,
		query:    query,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_orders_job"),
	}, nil
}

// Start schedules the job.
func (j *StaleOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale orders job started",
		"schedule", j.schedule, "olderThan", j.query.OlderThan())
	return nil
}

// Run performs one scan and returns how many stale orders were reported.
func (j *StaleOrdersJob) Run(ctx context.Context) int {
	stale, err := j.handler.Handle(ctx, j.query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale orders job failed", "error", err)
		return 0
	}

	for _, o := range stale {
		attrs := []any{
			"orderId", o.ID,
			"status", o.Status.String(),
			"lastProgressTime", kernel.FormatTimestamp(o.LastProgressTime),
		}
		if o.DriverID != nil {
			attrs = append(attrs, "driverId", *o.DriverID)
		}
		j.logger.WarnContext(ctx, "Order has no progress", attrs...)
	}

	return len(stale)
}

// Stop waits for a running scan to finish and stops the schedule.
func (j *StaleOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale orders job stopped")
}
