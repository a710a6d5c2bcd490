package store

import (
	"context"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/store/schema"
)

// CheckpointStore persists the per-domain checkpoint
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=CheckpointStore=MockCheckpointStore,Gateway=MockGateway,Reader=MockReader,Store=MockStore
type CheckpointStore interface {
	// EnsureCheckpoint seeds the checkpoint of a domain at startHeight-1 when it does not exist yet
	// and returns the stored checkpoint
	EnsureCheckpoint(ctx context.Context, d domain.Domain, startHeight uint64) (*domain.Checkpoint, error)
	// GetCheckpoint returns the checkpoint of a domain, or domain.ErrCheckpointNotFound
	GetCheckpoint(ctx context.Context, d domain.Domain) (*domain.Checkpoint, error)
	// ResetCheckpoint moves the checkpoint of a domain back to height and deletes its append-only rows above it
	ResetCheckpoint(ctx context.Context, d domain.Domain, height uint64) error
	// ListCheckpoints returns the checkpoints of every seeded domain
	ListCheckpoints(ctx context.Context) ([]domain.Checkpoint, error)
}

// Gateway commits the records of one height together with the checkpoint advance
type Gateway interface {
	// Commit writes records and advances the checkpoint of d from height-1 to height in one transaction.
	// It returns a *domain.ConflictError when the checkpoint is not at height-1 or an append-only
	// record already exists, and a *domain.TransientError for any other database failure.
	Commit(ctx context.Context, d domain.Domain, height uint64, records []domain.Record) error
}

// ProposalFilter narrows a proposal listing
type ProposalFilter struct {
	Status string
	Limit  int
	Offset int
}

// Proposal is a governance proposal with its latest tally, if any
type Proposal struct {
	schema.GovernanceProposal
	Tally *schema.GovernanceTally `json:"tally"`
}

// Status returns the tally status, or pending when no tally was indexed yet
func (p Proposal) Status() string {
	if p.Tally == nil {
		return domain.PROPOSAL_STATUS_PENDING
	}
	return p.Tally.Status
}

// Reader serves the read-only queries of the webserver
type Reader interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// GetLatestBlock returns the highest indexed block, nil if none
	GetLatestBlock(ctx context.Context) (*schema.Block, error)
	// GetBlockByHeight returns a block, nil if not indexed
	GetBlockByHeight(ctx context.Context, height uint64) (*schema.Block, error)
	// GetTransactionsByHeight returns the transactions of a block in block order
	GetTransactionsByHeight(ctx context.Context, height uint64) ([]schema.Transaction, error)
	// GetTransactionByHash returns a transaction, nil if not indexed
	GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error)
	// GetBalancesByOwner returns the latest balance of every token held by owner ordered by token
	GetBalancesByOwner(ctx context.Context, owner string) ([]schema.Balance, error)

	// GetParameters returns the latest value of every parameter ordered by name
	GetParameters(ctx context.Context) ([]schema.ChainParameter, error)

	// GetProposals returns proposals ordered by id descending
	GetProposals(ctx context.Context, filter ProposalFilter) ([]Proposal, error)
	// GetActiveProposals returns proposals that are pending or in voting
	GetActiveProposals(ctx context.Context) ([]Proposal, error)
	// GetProposal returns a proposal, nil if not indexed
	GetProposal(ctx context.Context, id uint64) (*Proposal, error)
	// GetProposalVotes returns the current votes of a proposal ordered by voter
	GetProposalVotes(ctx context.Context, id uint64, limit, offset int) ([]schema.GovernanceVote, error)

	// GetValidators returns the latest state of every validator ordered by address
	GetValidators(ctx context.Context, state string) ([]schema.Validator, error)
	// GetBondsByAddress returns bond deltas where address is delegator or validator, newest first
	GetBondsByAddress(ctx context.Context, address string, limit, offset int) ([]schema.BondDelta, error)

	// GetRewardClaimsByOwner returns reward claims of an owner, newest first
	GetRewardClaimsByOwner(ctx context.Context, owner string, limit, offset int) ([]schema.RewardClaim, error)
	// GetInflationRewardsByEpoch returns the rewards minted in an epoch ordered by validator
	GetInflationRewardsByEpoch(ctx context.Context, epoch uint64) ([]schema.InflationReward, error)
}

// Store defines the interface for database operations
type Store interface {
	CheckpointStore
	Gateway
	Reader
}
