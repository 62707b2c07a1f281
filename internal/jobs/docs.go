// Package jobs provides scheduled background tasks for the scheduling engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. DispatchSweepJob - Runs every second to promote the oldest pending
// delivery into a free dispatch slot
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchNextHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "* * * * * *", i.e. it runs every
// second. Registrations and completions already promote the queue head
// inline; the sweep covers slots freed by any other path.
//
// # Error Handling
//
// An occupied slot or an empty queue is not an error; the sweep only logs
// genuine failures and successful promotions.
package jobs
