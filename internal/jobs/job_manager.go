package jobs

import (
	"fmt"
	"log/slog"

	"smartlogix/internal/core/application/usecases/commands"
	"smartlogix/internal/core/ports"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	importInboxJob *ImportInboxJob
}

// NewJobManager creates a job manager wired to the given handlers.
func NewJobManager(
	inboxDir string,
	tenants ports.TenantRepository,
	importHandler commands.ImportOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		importInboxJob: NewImportInboxJob(inboxDir, tenants, importHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.importInboxJob.Start(); err != nil {
		return fmt.Errorf("failed to start import inbox job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.importInboxJob.Stop()
}
