// Package checkpointrepo persists batch import checkpoints. A checkpoint
// row records the last chunk committed for an import, keyed by tenant and
// import identifier, so a rerun resumes instead of duplicating work.
package checkpointrepo

import (
	"context"
	"errors"
	"time"

	"smartlogix/internal/pkg/tenantctx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckpointDTO represents the database structure for import checkpoints.
type CheckpointDTO struct {
	TenantID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImportID           string    `gorm:"primaryKey"`
	LastCommittedChunk int
	UpdatedAt          time.Time
}

// TableName specifies the database table name for import checkpoints.
func (CheckpointDTO) TableName() string {
	return "import_checkpoints"
}

// GormImportCheckpointRepository implements ImportCheckpointRepository
// using GORM.
type GormImportCheckpointRepository struct {
	db *gorm.DB
}

// NewGormImportCheckpointRepository creates a new GORM checkpoint repository.
func NewGormImportCheckpointRepository(db *gorm.DB) *GormImportCheckpointRepository {
	return &GormImportCheckpointRepository{db: db}
}

// LastCommittedChunk returns the index of the last committed chunk for the
// import, or -1 when no checkpoint exists.
func (r *GormImportCheckpointRepository) LastCommittedChunk(ctx context.Context, importID string) (int, error) {
	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return 0, err
	}

	var dto CheckpointDTO
	err = r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND import_id = ?", tenantID.Bytes(), importID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return -1, nil
		}
		return 0, err
	}

	return dto.LastCommittedChunk, nil
}

// SaveCheckpoint upserts the checkpoint for the import. Called inside the
// same transaction that writes the chunk, so the checkpoint and the chunk
// commit or roll back together.
func (r *GormImportCheckpointRepository) SaveCheckpoint(ctx context.Context, importID string, chunkIndex int) error {
	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	dto := CheckpointDTO{
		TenantID:           tenantID.Bytes(),
		ImportID:           importID,
		LastCommittedChunk: chunkIndex,
		UpdatedAt:          time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "import_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_committed_chunk", "updated_at"}),
		}).
		Create(&dto).Error
}
