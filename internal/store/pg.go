package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/store/schema"
)

type pgStore struct {
	db       *gorm.DB
	writerID string
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance.
// Every store gets its own writer id, recorded on the checkpoints it advances.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db, writerID: uuid.NewString()}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays under
// PostgreSQL's limit of 65535 parameters per statement.
//
// Each record consumes one parameter per inserted column. A fixed headroom is reserved
// for batch-level overhead such as ON CONFLICT clauses.
//
// Example with headroom of 1000:
//   - ChainParameter: 3 fields → (65,535 - 1,000) / 3 = 21,511 records/batch
//   - Transaction: 11 fields → (65,535 - 1,000) / 11 = 5,866 records/batch
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

func toCheckpoint(c schema.Checkpoint) domain.Checkpoint {
	return domain.Checkpoint{
		Domain:      domain.Domain(c.Domain),
		Height:      uint64(c.Height), //nolint:gosec,G115 // heights are never negative
		CommittedAt: c.CommittedAt,
		WriterID:    c.WriterID,
	}
}

// EnsureCheckpoint seeds the checkpoint of a domain and returns the stored row
func (s *pgStore) EnsureCheckpoint(ctx context.Context, d domain.Domain, startHeight uint64) (*domain.Checkpoint, error) {
	if startHeight == 0 {
		return nil, fmt.Errorf("start height of %s must be at least 1", d)
	}

	seed := schema.Checkpoint{
		Domain:   string(d),
		Height:   int64(startHeight - 1), //nolint:gosec,G115
		WriterID: s.writerID,
	}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "domain"}},
			DoNothing: true,
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&seed).Error; err != nil {
		return nil, fmt.Errorf("failed to seed checkpoint: %w", err)
	}

	return s.GetCheckpoint(ctx, d)
}

// GetCheckpoint returns the checkpoint of a domain
func (s *pgStore) GetCheckpoint(ctx context.Context, d domain.Domain) (*domain.Checkpoint, error) {
	db := s.db
	if hasDBResolver(db) {
		db = db.Clauses(dbresolver.Write)
	}

	var row schema.Checkpoint
	err := db.WithContext(ctx).Where("domain = ?", string(d)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCheckpointNotFound, d)
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	checkpoint := toCheckpoint(row)
	return &checkpoint, nil
}

// ListCheckpoints returns every checkpoint ordered by domain
func (s *pgStore) ListCheckpoints(ctx context.Context) ([]domain.Checkpoint, error) {
	var rows []schema.Checkpoint
	if err := s.db.WithContext(ctx).Order("domain ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}

	checkpoints := make([]domain.Checkpoint, 0, len(rows))
	for _, row := range rows {
		checkpoints = append(checkpoints, toCheckpoint(row))
	}
	return checkpoints, nil
}

// appendOnlyTables lists, per domain, the insert-only tables and their height column
var appendOnlyTables = map[domain.Domain][]struct {
	table  string
	column string
}{
	domain.DomainChain:        {{"blocks", "height"}, {"epochs", "start_height"}},
	domain.DomainPoS:          {{"bond_deltas", "height"}},
	domain.DomainRewards:      {{"reward_claims", "height"}},
	domain.DomainTransactions: {{"transactions", "height"}},
}

// ResetCheckpoint moves the checkpoint back so the indexer replays from height+1.
// Upsert projections are left in place and get overwritten as the replay proceeds.
func (s *pgStore) ResetCheckpoint(ctx context.Context, d domain.Domain, height uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.Checkpoint
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("domain = ?", string(d)).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrCheckpointNotFound, d)
			}
			return fmt.Errorf("failed to lock checkpoint: %w", err)
		}

		target := int64(height) //nolint:gosec,G115
		if target > row.Height {
			return fmt.Errorf("cannot reset %s forward from %d to %d", d, row.Height, height)
		}

		for _, t := range appendOnlyTables[d] {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s > ?", t.table, t.column), target).Error; err != nil {
				return fmt.Errorf("failed to delete %s above %d: %w", t.table, height, err)
			}
		}
		if err := tx.Where("domain = ? AND height > ?", string(d), target).
			Delete(&schema.SkippedHeight{}).Error; err != nil {
			return fmt.Errorf("failed to delete skipped heights: %w", err)
		}

		if err := tx.Model(&schema.Checkpoint{}).
			Where("domain = ?", string(d)).
			Updates(map[string]any{
				"height":       target,
				"writer_id":    s.writerID,
				"committed_at": gorm.Expr("now()"),
			}).Error; err != nil {
			return fmt.Errorf("failed to reset checkpoint: %w", err)
		}

		logger.InfoCtx(ctx, "Checkpoint reset",
			zap.String("domain", string(d)),
			zap.Int64("from", row.Height),
			zap.Uint64("to", height))
		return nil
	})
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("SELECT 1").Error
}

// GetLatestBlock returns the highest indexed block
func (s *pgStore) GetLatestBlock(ctx context.Context) (*schema.Block, error) {
	var block schema.Block
	err := s.db.WithContext(ctx).Order("height DESC").First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest block: %w", err)
	}
	return &block, nil
}

// GetBlockByHeight returns the block at height
func (s *pgStore) GetBlockByHeight(ctx context.Context, height uint64) (*schema.Block, error) {
	var block schema.Block

	query := func(db *gorm.DB) error {
		return db.WithContext(ctx).Where("height = ?", int64(height)).First(&block).Error //nolint:gosec,G115
	}

	err := query(s.db)
	if err == nil {
		return &block, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = query(s.db.Clauses(dbresolver.Write))
	if err == nil {
		return &block, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get block: %w", err)
}

// GetTransactionsByHeight returns the transactions of a block
func (s *pgStore) GetTransactionsByHeight(ctx context.Context, height uint64) ([]schema.Transaction, error) {
	var txs []schema.Transaction
	err := s.db.WithContext(ctx).
		Where("height = ?", int64(height)). //nolint:gosec,G115
		Order("tx_index ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions of block %d: %w", height, err)
	}
	return txs, nil
}

// GetTransactionByHash returns a transaction by hash
func (s *pgStore) GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error) {
	var tx schema.Transaction
	err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// GetBalancesByOwner returns the balances of an owner
func (s *pgStore) GetBalancesByOwner(ctx context.Context, owner string) ([]schema.Balance, error) {
	var balances []schema.Balance
	err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("token ASC").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get balances of %s: %w", owner, err)
	}
	return balances, nil
}

// GetParameters returns every parameter
func (s *pgStore) GetParameters(ctx context.Context) ([]schema.ChainParameter, error) {
	var params []schema.ChainParameter
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&params).Error; err != nil {
		return nil, fmt.Errorf("failed to get parameters: %w", err)
	}
	return params, nil
}

// GetProposals returns proposals, optionally filtered by tally status
func (s *pgStore) GetProposals(ctx context.Context, filter ProposalFilter) ([]Proposal, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.GovernanceProposal{}).
		Joins("LEFT JOIN governance_tallies ON governance_tallies.proposal_id = governance_proposals.id")

	if filter.Status != "" {
		query = query.Where("COALESCE(governance_tallies.status, ?) = ?", domain.PROPOSAL_STATUS_PENDING, filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var proposals []schema.GovernanceProposal
	if err := query.Select("governance_proposals.*").
		Order("governance_proposals.id DESC").
		Find(&proposals).Error; err != nil {
		return nil, fmt.Errorf("failed to get proposals: %w", err)
	}

	return s.withTallies(ctx, proposals)
}

// GetActiveProposals returns pending and voting proposals
func (s *pgStore) GetActiveProposals(ctx context.Context) ([]Proposal, error) {
	var proposals []schema.GovernanceProposal
	err := s.db.WithContext(ctx).
		Model(&schema.GovernanceProposal{}).
		Joins("LEFT JOIN governance_tallies ON governance_tallies.proposal_id = governance_proposals.id").
		Where("COALESCE(governance_tallies.status, ?) IN ?",
			domain.PROPOSAL_STATUS_PENDING,
			[]string{domain.PROPOSAL_STATUS_PENDING, domain.PROPOSAL_STATUS_VOTING}).
		Select("governance_proposals.*").
		Order("governance_proposals.id DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active proposals: %w", err)
	}

	return s.withTallies(ctx, proposals)
}

// GetProposal returns a single proposal
func (s *pgStore) GetProposal(ctx context.Context, id uint64) (*Proposal, error) {
	var proposal schema.GovernanceProposal
	err := s.db.WithContext(ctx).Where("id = ?", int64(id)).First(&proposal).Error //nolint:gosec,G115
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	proposals, err := s.withTallies(ctx, []schema.GovernanceProposal{proposal})
	if err != nil {
		return nil, err
	}
	return &proposals[0], nil
}

// withTallies attaches the latest tally to each proposal in one query
func (s *pgStore) withTallies(ctx context.Context, proposals []schema.GovernanceProposal) ([]Proposal, error) {
	result := make([]Proposal, 0, len(proposals))
	if len(proposals) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(proposals))
	for _, p := range proposals {
		ids = append(ids, p.ID)
	}

	var tallies []schema.GovernanceTally
	if err := s.db.WithContext(ctx).Where("proposal_id IN ?", ids).Find(&tallies).Error; err != nil {
		return nil, fmt.Errorf("failed to get tallies: %w", err)
	}
	byID := make(map[int64]*schema.GovernanceTally, len(tallies))
	for i := range tallies {
		byID[tallies[i].ProposalID] = &tallies[i]
	}

	for _, p := range proposals {
		result = append(result, Proposal{GovernanceProposal: p, Tally: byID[p.ID]})
	}
	return result, nil
}

// GetProposalVotes returns the votes of a proposal
func (s *pgStore) GetProposalVotes(ctx context.Context, id uint64, limit, offset int) ([]schema.GovernanceVote, error) {
	query := s.db.WithContext(ctx).
		Where("proposal_id = ?", int64(id)). //nolint:gosec,G115
		Order("voter ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var votes []schema.GovernanceVote
	if err := query.Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to get votes of proposal %d: %w", id, err)
	}
	return votes, nil
}

// GetValidators returns validators, optionally filtered by state
func (s *pgStore) GetValidators(ctx context.Context, state string) ([]schema.Validator, error) {
	query := s.db.WithContext(ctx).Order("address ASC")
	if state != "" {
		query = query.Where("state = ?", state)
	}

	var validators []schema.Validator
	if err := query.Find(&validators).Error; err != nil {
		return nil, fmt.Errorf("failed to get validators: %w", err)
	}
	return validators, nil
}

// GetBondsByAddress returns the bond history of a delegator or validator
func (s *pgStore) GetBondsByAddress(ctx context.Context, address string, limit, offset int) ([]schema.BondDelta, error) {
	query := s.db.WithContext(ctx).
		Where("delegator = ? OR validator = ?", address, address).
		Order("height DESC, tx_index DESC, event_index DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var bonds []schema.BondDelta
	if err := query.Find(&bonds).Error; err != nil {
		return nil, fmt.Errorf("failed to get bonds of %s: %w", address, err)
	}
	return bonds, nil
}

// GetRewardClaimsByOwner returns the reward claims of an owner
func (s *pgStore) GetRewardClaimsByOwner(ctx context.Context, owner string, limit, offset int) ([]schema.RewardClaim, error) {
	query := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("height DESC, event_index DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var claims []schema.RewardClaim
	if err := query.Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to get reward claims of %s: %w", owner, err)
	}
	return claims, nil
}

// GetInflationRewardsByEpoch returns the rewards minted in an epoch
func (s *pgStore) GetInflationRewardsByEpoch(ctx context.Context, epoch uint64) ([]schema.InflationReward, error) {
	var rewards []schema.InflationReward
	err := s.db.WithContext(ctx).
		Where("epoch = ?", int64(epoch)). //nolint:gosec,G115
		Order("validator ASC").
		Find(&rewards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get inflation rewards of epoch %d: %w", epoch, err)
	}
	return rewards, nil
}
