package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/store/schema"
)

// commitOrder is the parent-first order record kinds are written in
var commitOrder = []domain.RecordKind{
	domain.KindBlock,
	domain.KindEpoch,
	domain.KindBalance,
	domain.KindProposal,
	domain.KindProposalTally,
	domain.KindVote,
	domain.KindValidatorState,
	domain.KindValidatorPower,
	domain.KindBondDelta,
	domain.KindRewardClaim,
	domain.KindInflationReward,
	domain.KindParameter,
	domain.KindTransaction,
	domain.KindGapMarker,
}

// Commit writes the records of one height and advances the checkpoint atomically
func (s *pgStore) Commit(ctx context.Context, d domain.Domain, height uint64, records []domain.Record) error {
	if height == 0 {
		return &domain.ConflictError{Domain: d, Height: height, Reason: "height 0 cannot be committed"}
	}

	groups, err := groupRecords(d, height, records)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.advanceCheckpoint(tx, d, height); err != nil {
			return err
		}

		for _, kind := range commitOrder {
			batch := groups[kind]
			if len(batch) == 0 {
				continue
			}

			w := writers[kind]
			written, err := w.write(tx, batch)
			if err != nil {
				var conflict *domain.ConflictError
				if errors.As(err, &conflict) {
					conflict.Domain, conflict.Height, conflict.Checkpoint = d, height, height-1
					return conflict
				}
				return fmt.Errorf("failed to write %s records: %w", kind, err)
			}
			if !w.upsert && written != int64(len(batch)) {
				return &domain.ConflictError{
					Domain:     d,
					Height:     height,
					Checkpoint: height - 1,
					Reason:     fmt.Sprintf("%d of %d %s records already stored", int64(len(batch))-written, len(batch), kind),
				}
			}
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrConflict) {
		return err
	}
	return domain.NewTransientError(fmt.Sprintf("commit %s height %d", d, height), err)
}

// advanceCheckpoint moves the checkpoint from height-1 to height, or reports where it actually is
func (s *pgStore) advanceCheckpoint(tx *gorm.DB, d domain.Domain, height uint64) error {
	result := tx.Model(&schema.Checkpoint{}).
		Where("domain = ? AND height = ?", string(d), int64(height-1)). //nolint:gosec,G115
		Updates(map[string]any{
			"height":       int64(height), //nolint:gosec,G115
			"writer_id":    s.writerID,
			"committed_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to advance checkpoint: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var current schema.Checkpoint
	err := tx.Where("domain = ?", string(d)).First(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.ConflictError{Domain: d, Height: height, Reason: "checkpoint not initialized"}
	}
	if err != nil {
		return fmt.Errorf("failed to read checkpoint: %w", err)
	}

	conflict := &domain.ConflictError{
		Domain:     d,
		Height:     height,
		Checkpoint: uint64(current.Height), //nolint:gosec,G115
		Reason:     "checkpoint is not at the previous height",
	}
	if conflict.Checkpoint == height && current.WriterID == s.writerID {
		conflict.AlreadyCommitted = true
		conflict.Reason = "height already committed by this writer"
	}
	return conflict
}

// groupRecords validates the batch and groups it by kind.
// Upsert kinds keep the last record per natural key at the position of the first one.
// Append-only kinds must not repeat a natural key.
func groupRecords(d domain.Domain, height uint64, records []domain.Record) (map[domain.RecordKind][]domain.Record, error) {
	groups := make(map[domain.RecordKind][]domain.Record)
	positions := make(map[domain.RecordKind]map[string]int)

	reject := func(format string, args ...any) error {
		return &domain.ConflictError{
			Domain:     d,
			Height:     height,
			Checkpoint: height - 1,
			Reason:     fmt.Sprintf(format, args...),
		}
	}

	for _, r := range records {
		if r == nil {
			return nil, reject("nil record")
		}
		kind := r.Kind()
		w, ok := writers[kind]
		if !ok {
			return nil, reject("unknown record kind %q", kind)
		}
		if owner := domain.RecordDomain(r); owner != d {
			return nil, reject("%s record %s belongs to domain %q", kind, r.NaturalKey(), owner)
		}
		if gm, ok := r.(domain.GapMarker); ok && gm.Height != height {
			return nil, reject("gap marker for height %d", gm.Height)
		}

		key := r.NaturalKey()
		seen := positions[kind]
		if seen == nil {
			seen = make(map[string]int)
			positions[kind] = seen
		}
		if i, dup := seen[key]; dup {
			if !w.upsert {
				return nil, reject("duplicate %s record %s in batch", kind, key)
			}
			groups[kind][i] = r
			continue
		}
		seen[key] = len(groups[kind])
		groups[kind] = append(groups[kind], r)
	}

	return groups, nil
}
