// Package jobs provides scheduled background tasks for the taxi service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with
// seconds) and log through log/slog.
//
// # Available Jobs
//
// StaleOrdersJob scans open orders (not Finished, not Canceled) whose last
// status change is older than a threshold and logs each one with its id,
// status and last progress time.
//
// # Usage
//
//	job, err := jobs.NewStaleOrdersJob(handler, 15*time.Minute, "0 * * * * *", logger)
//	if err != nil {
//		return err
//	}
//
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
