package jobs

import "fmt"

type job interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  job
}

// JobManager coordinates all scheduled jobs in the application.
// Jobs start in registration order and stop in reverse order.
type JobManager struct {
	jobs []namedJob
}

// NewJobManager creates a job manager running the stale orders monitor.
func NewJobManager(staleOrdersJob *StaleOrdersJob) *JobManager {
	jm := &JobManager{}
	jm.Register("stale orders", staleOrdersJob)
	return jm
}

// Register adds a job to be managed.
func (jm *JobManager) Register(name string, j job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: j})
}

// StartAll starts all scheduled jobs.
// If one fails to start, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			for k := i - 1; k >= 0; k-- {
				jm.jobs[k].job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
