package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"forwarding/internal/core/application/usecases/queries"
)

// overdueSweepSchedule runs the sweep at the top of every hour.
const overdueSweepSchedule = "0 0 * * * *"

// OverdueTaskJob periodically reports workflow tasks past their due date.
// The sweep reads and logs; escalation stays a human decision.
type OverdueTaskJob struct {
	handler queries.GetOverdueTasksQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueTaskJob creates the overdue-task audit sweep.
func NewOverdueTaskJob(handler queries.GetOverdueTasksQueryHandler, logger *slog.Logger) *OverdueTaskJob {
	return &OverdueTaskJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_task_job"),
	}
}

// Start schedules the sweep.
func (j *OverdueTaskJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue task sweep started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *OverdueTaskJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue task sweep stopped")
}

func (j *OverdueTaskJob) sweep() {
	ctx := context.Background()
	now := time.Now().UTC()

	query, err := queries.NewGetOverdueTasksQuery(now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue task sweep failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue task sweep failed", "error", err)
		return
	}

	for _, t := range overdue {
		j.logger.WarnContext(ctx, "Task is overdue",
			"task_id", t.ID.String(),
			"shipment_id", t.ShipmentID,
			"task_type", t.TaskType,
			"status", t.Status,
			"due_date", t.DueDate,
			"overdue_for", now.Sub(t.DueDate).String(),
		)
	}

	j.logger.InfoContext(ctx, "Overdue task sweep finished", "overdue_count", len(overdue))
}
