package schema

import "time"

// Checkpoint represents the checkpoints table - one row per indexer domain
type Checkpoint struct {
	// Domain is the indexer domain owning this checkpoint
	Domain string `gorm:"column:domain;primaryKey;type:text"`
	// Height is the highest committed height of the domain
	Height int64 `gorm:"column:height;not null"`
	// WriterID identifies the indexer process that advanced the checkpoint last
	WriterID string `gorm:"column:writer_id;not null;type:text"`
	// CommittedAt is the time of the last commit
	CommittedAt time.Time `gorm:"column:committed_at;not null;default:now();type:timestamptz"`
	// CreatedAt is the timestamp when the domain was first seeded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Checkpoint model
func (Checkpoint) TableName() string {
	return "checkpoints"
}

// SkippedHeight represents the skipped_heights table - heights committed without records because the block was malformed
type SkippedHeight struct {
	Domain    string    `gorm:"column:domain;primaryKey;type:text"`
	Height    int64     `gorm:"column:height;primaryKey"`
	Reason    string    `gorm:"column:reason;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

func (SkippedHeight) TableName() string {
	return "skipped_heights"
}
