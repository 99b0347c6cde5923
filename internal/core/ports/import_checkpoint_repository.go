package ports

import (
	"context"
)

// ImportCheckpointRepository tracks the progress of batch imports so a
// rerun of the same import resumes after the last committed chunk instead
// of duplicating it. The checkpoint is written in the same transaction as
// the chunk it acknowledges.
type ImportCheckpointRepository interface {
	// LastCommittedChunk returns the index of the last chunk committed for
	// the given import, or -1 when the import has no checkpoint yet.
	LastCommittedChunk(ctx context.Context, importID string) (int, error)

	// SaveCheckpoint records chunkIndex as committed for the given import,
	// overwriting any earlier checkpoint.
	SaveCheckpoint(ctx context.Context, importID string, chunkIndex int) error
}
