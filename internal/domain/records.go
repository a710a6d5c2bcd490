package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecordKind identifies the shape and table family of a domain record
type RecordKind string

const (
	KindBlock           RecordKind = "block"
	KindEpoch           RecordKind = "epoch"
	KindBalance         RecordKind = "balance"
	KindProposal        RecordKind = "proposal"
	KindProposalTally   RecordKind = "proposal_tally"
	KindVote            RecordKind = "vote"
	KindBondDelta       RecordKind = "bond_delta"
	KindValidatorState  RecordKind = "validator_state"
	KindValidatorPower  RecordKind = "validator_power"
	KindRewardClaim     RecordKind = "reward_claim"
	KindInflationReward RecordKind = "inflation_reward"
	KindParameter       RecordKind = "parameter"
	KindTransaction     RecordKind = "transaction"
	KindGapMarker       RecordKind = "gap_marker"
)

var kindDomains = map[RecordKind]Domain{
	KindBlock:           DomainChain,
	KindEpoch:           DomainChain,
	KindBalance:         DomainChain,
	KindProposal:        DomainGovernance,
	KindProposalTally:   DomainGovernance,
	KindVote:            DomainGovernance,
	KindBondDelta:       DomainPoS,
	KindValidatorState:  DomainPoS,
	KindValidatorPower:  DomainPoS,
	KindRewardClaim:     DomainRewards,
	KindInflationReward: DomainRewards,
	KindParameter:       DomainParameters,
	KindTransaction:     DomainTransactions,
}

// Domain returns the domain owning records of this kind.
// Gap markers belong to whichever domain skipped the height and return "".
func (k RecordKind) Domain() Domain {
	return kindDomains[k]
}

// Record is a normalized, persistable fact derived from one block
type Record interface {
	Kind() RecordKind
	NaturalKey() string
}

// RecordDomain resolves the owning domain of a record
func RecordDomain(r Record) Domain {
	if gm, ok := r.(GapMarker); ok {
		return gm.Domain
	}
	return r.Kind().Domain()
}

// Block is the header summary of a finalized height
type Block struct {
	Height          uint64
	Hash            string
	ChainID         string
	Time            time.Time
	ProposerAddress string
	NumTxs          int
}

func (Block) Kind() RecordKind { return KindBlock }
func (b Block) NaturalKey() string { return fmt.Sprintf("%d", b.Height) }

// Epoch marks the first block of a new epoch
type Epoch struct {
	Epoch       uint64
	StartHeight uint64
	StartTime   time.Time
}

func (Epoch) Kind() RecordKind { return KindEpoch }
func (e Epoch) NaturalKey() string { return fmt.Sprintf("%d", e.Epoch) }

// Balance is the latest balance of an owner in one token
type Balance struct {
	Owner  string
	Token  string
	Amount string
	Height uint64
}

func (Balance) Kind() RecordKind { return KindBalance }
func (b Balance) NaturalKey() string {
	return fmt.Sprintf("%s/%s", b.Owner, b.Token)
}

// GovernanceProposal is a submitted on-chain governance proposal
type GovernanceProposal struct {
	ID               uint64
	ProposalType     string
	Proposer         string
	Content          json.RawMessage
	VotingStartEpoch uint64
	VotingEndEpoch   uint64
	ActivationEpoch  uint64
	Height           uint64
}

func (GovernanceProposal) Kind() RecordKind { return KindProposal }
func (p GovernanceProposal) NaturalKey() string { return fmt.Sprintf("%d", p.ID) }

// ProposalTally is the latest status and vote tally of a proposal
type ProposalTally struct {
	ProposalID uint64
	Status     string
	Yay        string
	Nay        string
	Abstain    string
	Height     uint64
}

func (ProposalTally) Kind() RecordKind { return KindProposalTally }
func (t ProposalTally) NaturalKey() string { return fmt.Sprintf("%d", t.ProposalID) }

// GovernanceVote is the current vote of a voter on a proposal
type GovernanceVote struct {
	ProposalID uint64
	Voter      string
	Vote       string
	Height     uint64
}

func (GovernanceVote) Kind() RecordKind { return KindVote }
func (v GovernanceVote) NaturalKey() string {
	return fmt.Sprintf("%d/%s", v.ProposalID, v.Voter)
}

// ValidatorBondDelta is a single bond, unbond, withdraw or redelegation
type ValidatorBondDelta struct {
	Height               uint64
	TxIndex              int
	EventIndex           int
	TxHash               string
	BondKind             string
	Validator            string
	Delegator            string
	DestinationValidator string
	Amount               string
	Epoch                uint64
}

func (ValidatorBondDelta) Kind() RecordKind { return KindBondDelta }
func (d ValidatorBondDelta) NaturalKey() string {
	return fmt.Sprintf("%d/%d/%d", d.Height, d.TxIndex, d.EventIndex)
}

// ValidatorState is the latest lifecycle state of a validator
type ValidatorState struct {
	Address        string
	State          string
	CommissionRate string
	Epoch          uint64
	Height         uint64
}

func (ValidatorState) Kind() RecordKind { return KindValidatorState }
func (s ValidatorState) NaturalKey() string { return s.Address }

// ValidatorPower is the latest consensus voting power of a validator key
type ValidatorPower struct {
	PubKey     string
	PubKeyType string
	Power      int64
	Height     uint64
}

func (ValidatorPower) Kind() RecordKind { return KindValidatorPower }
func (p ValidatorPower) NaturalKey() string { return p.PubKey }

// RewardClaim is a claim of accumulated staking rewards
type RewardClaim struct {
	TxHash     string
	EventIndex int
	Owner      string
	Validator  string
	Amount     string
	Height     uint64
}

func (RewardClaim) Kind() RecordKind { return KindRewardClaim }
func (c RewardClaim) NaturalKey() string {
	return fmt.Sprintf("%s/%d", c.TxHash, c.EventIndex)
}

// InflationReward is the reward minted for a validator in an epoch
type InflationReward struct {
	Epoch     uint64
	Validator string
	Amount    string
	Height    uint64
}

func (InflationReward) Kind() RecordKind { return KindInflationReward }
func (r InflationReward) NaturalKey() string {
	return fmt.Sprintf("%d/%s", r.Epoch, r.Validator)
}

// ParameterChange is the latest value of a chain or consensus parameter
type ParameterChange struct {
	Name   string
	Value  string
	Height uint64
}

func (ParameterChange) Kind() RecordKind { return KindParameter }
func (p ParameterChange) NaturalKey() string { return p.Name }

// Transaction is an indexed transaction with its execution result
type Transaction struct {
	Hash      string
	Height    uint64
	Index     int
	Code      uint32
	Codespace string
	TxKind    string
	GasWanted int64
	GasUsed   int64
	Size      int
	Log       string
	Events    json.RawMessage
}

func (Transaction) Kind() RecordKind { return KindTransaction }
func (t Transaction) NaturalKey() string { return t.Hash }

// GapMarker records a height that was skipped because its payload could not be processed
type GapMarker struct {
	Domain Domain
	Height uint64
	Reason string
}

func (GapMarker) Kind() RecordKind { return KindGapMarker }
func (g GapMarker) NaturalKey() string {
	return fmt.Sprintf("%s/%d", g.Domain, g.Height)
}
