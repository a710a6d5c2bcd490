package store

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/store/schema"
)

// kindWriter persists one kind of record.
// Upsert writers overwrite the stored projection; append-only writers skip existing keys
// and report how many rows they inserted so the caller can detect replays.
type kindWriter struct {
	upsert bool
	write  func(tx *gorm.DB, records []domain.Record) (int64, error)
}

var writers = map[domain.RecordKind]kindWriter{
	domain.KindBlock: {
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(b domain.Block) schema.Block {
				return schema.Block{
					Height:          i64(b.Height),
					Hash:            b.Hash,
					ChainID:         b.ChainID,
					Time:            b.Time.UTC(),
					ProposerAddress: b.ProposerAddress,
					NumTxs:          b.NumTxs,
				}
			})
			if err != nil {
				return 0, err
			}
			return insertRows(tx, rows, 7, "height")
		},
	},
	domain.KindEpoch: {
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(e domain.Epoch) schema.Epoch {
				return schema.Epoch{
					Epoch:       i64(e.Epoch),
					StartHeight: i64(e.StartHeight),
					StartTime:   e.StartTime.UTC(),
				}
			})
			if err != nil {
				return 0, err
			}
			return insertRows(tx, rows, 4, "epoch")
		},
	},
	domain.KindBalance: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(b domain.Balance) schema.Balance {
				return schema.Balance{
					Owner:  b.Owner,
					Token:  b.Token,
					Amount: b.Amount,
					Height: i64(b.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 5, []string{"owner", "token"},
				[]string{"amount", "height", "updated_at"})
		},
	},
	domain.KindProposal: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(p domain.GovernanceProposal) schema.GovernanceProposal {
				return schema.GovernanceProposal{
					ID:               i64(p.ID),
					ProposalType:     p.ProposalType,
					Proposer:         p.Proposer,
					Content:          jsonOrNull(p.Content),
					VotingStartEpoch: i64(p.VotingStartEpoch),
					VotingEndEpoch:   i64(p.VotingEndEpoch),
					ActivationEpoch:  i64(p.ActivationEpoch),
					Height:           i64(p.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 10, []string{"id"},
				[]string{"proposal_type", "proposer", "content", "voting_start_epoch", "voting_end_epoch", "activation_epoch", "height", "updated_at"})
		},
	},
	domain.KindProposalTally: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(t domain.ProposalTally) schema.GovernanceTally {
				return schema.GovernanceTally{
					ProposalID: i64(t.ProposalID),
					Status:     t.Status,
					Yay:        t.Yay,
					Nay:        t.Nay,
					Abstain:    t.Abstain,
					Height:     i64(t.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 7, []string{"proposal_id"},
				[]string{"status", "yay", "nay", "abstain", "height", "updated_at"})
		},
	},
	domain.KindVote: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(v domain.GovernanceVote) schema.GovernanceVote {
				return schema.GovernanceVote{
					ProposalID: i64(v.ProposalID),
					Voter:      v.Voter,
					Vote:       v.Vote,
					Height:     i64(v.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 5, []string{"proposal_id", "voter"},
				[]string{"vote", "height", "updated_at"})
		},
	},
	domain.KindValidatorState: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(v domain.ValidatorState) schema.Validator {
				return schema.Validator{
					Address:        v.Address,
					State:          v.State,
					CommissionRate: v.CommissionRate,
					Epoch:          i64(v.Epoch),
					Height:         i64(v.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 6, []string{"address"},
				[]string{"state", "commission_rate", "epoch", "height", "updated_at"})
		},
	},
	domain.KindValidatorPower: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(p domain.ValidatorPower) schema.ValidatorPower {
				return schema.ValidatorPower{
					PubKey:     p.PubKey,
					PubKeyType: p.PubKeyType,
					Power:      p.Power,
					Height:     i64(p.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 5, []string{"pub_key"},
				[]string{"pub_key_type", "power", "height", "updated_at"})
		},
	},
	domain.KindBondDelta: {
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(b domain.ValidatorBondDelta) schema.BondDelta {
				return schema.BondDelta{
					Height:               i64(b.Height),
					TxIndex:              b.TxIndex,
					EventIndex:           b.EventIndex,
					TxHash:               b.TxHash,
					Kind:                 b.BondKind,
					Validator:            b.Validator,
					Delegator:            b.Delegator,
					DestinationValidator: b.DestinationValidator,
					Amount:               b.Amount,
					Epoch:                i64(b.Epoch),
				}
			})
			if err != nil {
				return 0, err
			}
			return insertRows(tx, rows, 11, "height", "tx_index", "event_index")
		},
	},
	domain.KindRewardClaim: {
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(c domain.RewardClaim) schema.RewardClaim {
				return schema.RewardClaim{
					TxHash:     c.TxHash,
					EventIndex: c.EventIndex,
					Owner:      c.Owner,
					Validator:  c.Validator,
					Amount:     c.Amount,
					Height:     i64(c.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return insertRows(tx, rows, 7, "tx_hash", "event_index")
		},
	},
	domain.KindInflationReward: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(r domain.InflationReward) schema.InflationReward {
				return schema.InflationReward{
					Epoch:     i64(r.Epoch),
					Validator: r.Validator,
					Amount:    r.Amount,
					Height:    i64(r.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 5, []string{"epoch", "validator"},
				[]string{"amount", "height", "updated_at"})
		},
	},
	domain.KindParameter: {
		upsert: true,
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(p domain.ParameterChange) schema.ChainParameter {
				return schema.ChainParameter{
					Name:   p.Name,
					Value:  p.Value,
					Height: i64(p.Height),
				}
			})
			if err != nil {
				return 0, err
			}
			return upsertRows(tx, rows, 4, []string{"name"},
				[]string{"value", "height", "updated_at"})
		},
	},
	domain.KindTransaction: {
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(t domain.Transaction) schema.Transaction {
				return schema.Transaction{
					Hash:      t.Hash,
					Height:    i64(t.Height),
					TxIndex:   t.Index,
					Code:      int64(t.Code),
					Codespace: t.Codespace,
					Kind:      t.TxKind,
					GasWanted: t.GasWanted,
					GasUsed:   t.GasUsed,
					Size:      t.Size,
					Log:       t.Log,
					Events:    jsonOrNull(t.Events),
				}
			})
			if err != nil {
				return 0, err
			}
			return insertRows(tx, rows, 12, "hash")
		},
	},
	domain.KindGapMarker: {
		write: func(tx *gorm.DB, records []domain.Record) (int64, error) {
			rows, err := toRows(records, func(g domain.GapMarker) schema.SkippedHeight {
				return schema.SkippedHeight{
					Domain: string(g.Domain),
					Height: i64(g.Height),
					Reason: g.Reason,
				}
			})
			if err != nil {
				return 0, err
			}
			return insertRows(tx, rows, 4, "domain", "height")
		},
	},
}

func jsonOrNull(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(raw)
}

func i64(v uint64) int64 {
	return int64(v) //nolint:gosec,G115 // heights and epochs fit in bigint
}

// toRows converts records of one kind into table rows
func toRows[R domain.Record, T any](records []domain.Record, convert func(R) T) ([]T, error) {
	rows := make([]T, 0, len(records))
	for _, r := range records {
		rec, ok := r.(R)
		if !ok {
			return nil, &domain.ConflictError{Reason: fmt.Sprintf("unexpected record type %T for kind %s", r, r.Kind())}
		}
		rows = append(rows, convert(rec))
	}
	return rows, nil
}

func conflictColumns(names []string) []clause.Column {
	columns := make([]clause.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, clause.Column{Name: name})
	}
	return columns
}

// insertRows inserts rows in batches, skipping rows whose key already exists,
// and returns the number of rows actually inserted
func insertRows[T any](tx *gorm.DB, rows []T, fieldsPerRecord int, keys ...string) (int64, error) {
	var inserted int64
	batchSize := calculateSafeBatchSize(len(rows), fieldsPerRecord)

	for start := 0; start < len(rows); start += batchSize {
		batch := rows[start:min(start+batchSize, len(rows))]
		result := tx.Clauses(clause.OnConflict{
			Columns:   conflictColumns(keys),
			DoNothing: true,
		}).Create(&batch)
		if result.Error != nil {
			return inserted, result.Error
		}
		inserted += result.RowsAffected
	}

	return inserted, nil
}

// upsertRows inserts rows in batches, overwriting updateColumns of rows whose key already exists
func upsertRows[T any](tx *gorm.DB, rows []T, fieldsPerRecord int, keys []string, updateColumns []string) (int64, error) {
	var written int64
	batchSize := calculateSafeBatchSize(len(rows), fieldsPerRecord)

	for start := 0; start < len(rows); start += batchSize {
		batch := rows[start:min(start+batchSize, len(rows))]
		result := tx.Clauses(clause.OnConflict{
			Columns:   conflictColumns(keys),
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).Create(&batch)
		if result.Error != nil {
			return written, result.Error
		}
		written += result.RowsAffected
	}

	return written, nil
}
