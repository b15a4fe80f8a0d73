// Package jobs provides scheduled background tasks for the forwarding
// service, implemented as cron jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueTaskJob - Periodic audit sweep that reports workflow tasks past
// their due date. The sweep is read-only: it never mutates task state, it
// only surfaces overdue work in the structured log for the operations team.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getOverdueTasksHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
