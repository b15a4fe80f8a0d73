package jobs

import (
	"fmt"
	"log/slog"

	"forwarding/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueTaskJob *OverdueTaskJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getOverdueTasksHandler queries.GetOverdueTasksQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueTaskJob: NewOverdueTaskJob(getOverdueTasksHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueTaskJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue task job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueTaskJob.Stop()
}
