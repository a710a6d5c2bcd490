package schema

import (
	"time"

	"gorm.io/datatypes"
)

// GovernanceProposal represents the governance_proposals table
type GovernanceProposal struct {
	// ID is the on-chain proposal id
	ID int64 `gorm:"column:id;primaryKey" json:"id"`
	// ProposalType is the kind of proposal (default, pgf_steward, pgf_payment...)
	ProposalType string `gorm:"column:proposal_type;not null;type:text" json:"type"`
	// Proposer is the address that submitted the proposal
	Proposer string `gorm:"column:proposer;not null;type:text" json:"proposer"`
	// Content is the canonical JSON content of the proposal
	Content datatypes.JSON `gorm:"column:content;type:jsonb" json:"content"`
	// VotingStartEpoch is the first epoch votes are accepted
	VotingStartEpoch int64 `gorm:"column:voting_start_epoch;not null" json:"votingStartEpoch"`
	// VotingEndEpoch is the last epoch votes are accepted
	VotingEndEpoch int64 `gorm:"column:voting_end_epoch;not null" json:"votingEndEpoch"`
	// ActivationEpoch is the epoch the proposal takes effect if passed
	ActivationEpoch int64 `gorm:"column:activation_epoch;not null" json:"activationEpoch"`
	// Height is the height the proposal was last written at
	Height int64 `gorm:"column:height;not null" json:"height"`
	// CreatedAt is the timestamp when the proposal was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"-"`
	// UpdatedAt is the timestamp when the proposal was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the GovernanceProposal model
func (GovernanceProposal) TableName() string {
	return "governance_proposals"
}

// GovernanceTally represents the governance_tallies table - the latest tally per proposal
type GovernanceTally struct {
	ProposalID int64     `gorm:"column:proposal_id;primaryKey" json:"proposalId"`
	Status     string    `gorm:"column:status;not null;type:text;index" json:"status"`
	Yay        string    `gorm:"column:yay;not null;type:numeric(78,0)" json:"yay"`
	Nay        string    `gorm:"column:nay;not null;type:numeric(78,0)" json:"nay"`
	Abstain    string    `gorm:"column:abstain;not null;type:numeric(78,0)" json:"abstain"`
	Height     int64     `gorm:"column:height;not null" json:"height"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the GovernanceTally model
func (GovernanceTally) TableName() string {
	return "governance_tallies"
}

// GovernanceVote represents the governance_votes table - the current vote of each voter
type GovernanceVote struct {
	ProposalID int64     `gorm:"column:proposal_id;primaryKey" json:"proposalId"`
	Voter      string    `gorm:"column:voter;primaryKey;type:text" json:"voter"`
	Vote       string    `gorm:"column:vote;not null;type:text" json:"vote"`
	Height     int64     `gorm:"column:height;not null" json:"height"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the GovernanceVote model
func (GovernanceVote) TableName() string {
	return "governance_votes"
}
