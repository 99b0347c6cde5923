// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// ImportInboxJob polls a local inbox directory every 30 seconds for
// order CSV files dropped per tenant (inbox/<tenant-slug>/*.csv),
// imports them through the order import pipeline and moves handled
// files into a processed/ subfolder. Files whose import fails stay in
// place and resume from their last committed chunk on the next poll.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(inboxDir, tenants, importHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
