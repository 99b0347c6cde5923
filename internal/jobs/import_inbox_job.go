package jobs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"smartlogix/internal/core/application/usecases/commands"
	"smartlogix/internal/core/ports"
	"smartlogix/internal/pkg/tenantctx"

	"github.com/robfig/cron/v3"
)

// processedDirName is where handled CSV files are moved within each
// tenant's inbox folder, so a rerun does not pick them up again.
const processedDirName = "processed"

// ImportInboxJob polls a local inbox directory for order CSV files.
// The layout is inbox/<tenant-slug>/*.csv; each file is imported under
// its tenant and then moved into a processed/ subfolder. The import id
// is derived from the file name, so a file that failed mid-way resumes
// from its last committed chunk on the next poll.
type ImportInboxJob struct {
	inboxDir string
	tenants  ports.TenantRepository
	handler  commands.ImportOrdersCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger

	// Guards against overlapping runs when an import outlasts the
	// polling interval.
	running sync.Mutex
}

// NewImportInboxJob creates a job polling inboxDir every 30 seconds.
func NewImportInboxJob(
	inboxDir string,
	tenants ports.TenantRepository,
	handler commands.ImportOrdersCommandHandler,
	logger *slog.Logger,
) *ImportInboxJob {
	return &ImportInboxJob{
		inboxDir: inboxDir,
		tenants:  tenants,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "import_inbox_job"),
	}
}

// Start begins polling the inbox directory.
func (j *ImportInboxJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		if !j.running.TryLock() {
			return
		}
		defer j.running.Unlock()

		j.scan(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Import inbox job started", "dir", j.inboxDir)
	return nil
}

// Stop stops the polling job.
func (j *ImportInboxJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Import inbox job stopped")
}

func (j *ImportInboxJob) scan(ctx context.Context) {
	entries, err := os.ReadDir(j.inboxDir)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger.ErrorContext(ctx, "Failed to read inbox directory", "error", err)
		}
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		j.scanTenantFolder(ctx, entry.Name())
	}
}

func (j *ImportInboxJob) scanTenantFolder(ctx context.Context, slug string) {
	folder := filepath.Join(j.inboxDir, slug)
	files, err := filepath.Glob(filepath.Join(folder, "*.csv"))
	if err != nil || len(files) == 0 {
		return
	}

	t, err := j.tenants.GetBySlug(ctx, slug)
	if err != nil {
		j.logger.WarnContext(ctx, "Inbox folder has no matching tenant", "slug", slug)
		return
	}
	if !t.IsActive() {
		j.logger.WarnContext(ctx, "Skipping inbox of deactivated tenant", "slug", slug)
		return
	}

	tenantCtx := tenantctx.WithTenant(ctx, t.ID())
	for _, file := range files {
		j.importFile(tenantCtx, slug, file)
	}
}

func (j *ImportInboxJob) importFile(ctx context.Context, slug, path string) {
	name := filepath.Base(path)
	importID := slug + "/" + name

	source, err := os.Open(path)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to open inbox file", "file", path, "error", err)
		return
	}
	defer source.Close()

	cmd, err := commands.NewImportOrdersCommand(importID, source)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build import command", "file", path, "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		// The file stays in place; the next poll resumes from the
		// last committed chunk under the same import id.
		j.logger.ErrorContext(ctx, "Import failed, leaving file for retry",
			"file", path, "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Inbox file imported",
		"file", path,
		"imported", result.RowsImported,
		"skipped", result.RowsSkipped,
		"chunks", result.ChunksCommitted)

	if err = j.moveToProcessed(path); err != nil {
		j.logger.ErrorContext(ctx, "Failed to move processed file", "file", path, "error", err)
	}
}

func (j *ImportInboxJob) moveToProcessed(path string) error {
	dir := filepath.Join(filepath.Dir(path), processedDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.Rename(path, filepath.Join(dir, filepath.Base(path)))
}
