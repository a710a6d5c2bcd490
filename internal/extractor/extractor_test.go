package extractor_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/extractor"
)

var blockTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func ev(typ string, kv ...string) domain.Event {
	e := domain.Event{Type: typ}
	for i := 0; i+1 < len(kv); i += 2 {
		e.Attributes = append(e.Attributes, domain.Attribute{Key: kv[i], Value: kv[i+1]})
	}
	return e
}

// fixtureBlock is a block carrying at least one event for every domain
func fixtureBlock() *domain.RawBlock {
	return &domain.RawBlock{
		Height:          120,
		Hash:            "ABCDEF",
		ChainID:         "namada-test.0a1b2c",
		Time:            blockTime,
		ProposerAddress: "0102",
		BeginBlockEvents: []domain.Event{
			ev("new_epoch", "epoch", "15"),
		},
		Txs: []domain.RawTx{
			{
				Index: 0, Hash: "TX0", Data: []byte("tx-zero"), GasWanted: 100, GasUsed: 90,
				Events: []domain.Event{
					ev("tx", "kind", "vote_proposal"),
					ev("proposal_vote", "proposal_id", "4", "voter", "tnam1voter", "vote", "yay"),
				},
			},
			{
				Index: 1, Hash: "TX1", Data: []byte("tx-one"), Code: 1, Log: "out of gas",
				Events: []domain.Event{
					ev("bond", "validator", "tnam1val", "source", "tnam1failed", "amount", "999"),
				},
			},
			{
				Index: 2, Hash: "TX2", Data: []byte("tx-two"),
				Events: []domain.Event{
					ev("tx", "kind", "bond"),
					ev("bond", "validator", "tnam1val", "source", "tnam1alice", "amount", "1000", "epoch", "15"),
					ev("redelegate", "validator", "tnam1val", "source", "tnam1alice", "amount", "5", "dest_validator", "tnam1other"),
					ev("claim_rewards", "source", "tnam1alice", "validator", "tnam1val", "amount", "12"),
					ev("proposal_submitted", "proposal_id", "5", "proposer", "tnam1alice", "kind", "default",
						"voting_start_epoch", "16", "voting_end_epoch", "20", "activation_epoch", "22",
						"content", `{"title":"Upgrade","abstract":"x"}`),
				},
			},
		},
		EndBlockEvents: []domain.Event{
			ev("proposal_tally", "proposal_id", "4", "status", "voting", "yay", "100", "nay", "0", "abstain", "3"),
			ev("validator_state", "validator", "tnam1val", "state", "consensus", "commission_rate", "0.05", "epoch", "15"),
			ev("pos_rewards", "epoch", "15", "validator", "tnam1val", "amount", "77"),
			ev("parameters_changed", "max_proposal_period", "27", "min_num_of_blocks", "4"),
		},
		ValidatorUpdates: []domain.ValidatorUpdate{
			{PubKeyType: "ed25519", PubKey: "DEAD", Power: 42},
		},
		ParamUpdates: []domain.ParamUpdate{
			{Name: "consensus.block.max_gas", Value: "-1"},
		},
	}
}

func extract(t *testing.T, d domain.Domain, block *domain.RawBlock) []domain.Record {
	t.Helper()
	ex, err := extractor.New(d)
	require.NoError(t, err)
	assert.Equal(t, d, ex.Domain())
	records, err := ex.Extract(block, block.Height)
	require.NoError(t, err)
	return records
}

func TestNew_UnknownDomain(t *testing.T) {
	_, err := extractor.New("ibc")
	assert.Error(t, err)
}

func TestExtract_Chain(t *testing.T) {
	records := extract(t, domain.DomainChain, fixtureBlock())

	assert.Equal(t, []domain.Record{
		domain.Block{Height: 120, Hash: "ABCDEF", ChainID: "namada-test.0a1b2c", Time: blockTime, ProposerAddress: "0102", NumTxs: 3},
		domain.Epoch{Epoch: 15, StartHeight: 120, StartTime: blockTime},
	}, records)
}

func TestExtract_ChainBalances(t *testing.T) {
	block := &domain.RawBlock{
		Height: 42,
		Hash:   "B42",
		Time:   blockTime,
		Txs: []domain.RawTx{
			{
				Index: 0, Hash: "TX0",
				Events: []domain.Event{
					ev("balance_change", "owner", "tnam1alice", "token", "tnam1nam", "amount", "900"),
					ev("balance_change", "owner", "tnam1bob", "token", "tnam1nam", "amount", "100"),
				},
			},
			{
				Index: 1, Hash: "TX1", Code: 1,
				Events: []domain.Event{
					ev("balance_change", "owner", "tnam1alice", "token", "tnam1nam", "amount", "0"),
				},
			},
		},
		EndBlockEvents: []domain.Event{
			ev("balance_change", "owner", "tnam1alice", "token", "tnam1nam", "amount", "905"),
		},
	}

	assert.Equal(t, []domain.Record{
		domain.Block{Height: 42, Hash: "B42", Time: blockTime, NumTxs: 2},
		domain.Balance{Owner: "tnam1alice", Token: "tnam1nam", Amount: "900", Height: 42},
		domain.Balance{Owner: "tnam1bob", Token: "tnam1nam", Amount: "100", Height: 42},
		domain.Balance{Owner: "tnam1alice", Token: "tnam1nam", Amount: "905", Height: 42},
	}, extract(t, domain.DomainChain, block))
}

func TestExtract_Governance(t *testing.T) {
	records := extract(t, domain.DomainGovernance, fixtureBlock())
	require.Len(t, records, 3)

	assert.Equal(t, domain.GovernanceVote{ProposalID: 4, Voter: "tnam1voter", Vote: "yay", Height: 120}, records[0])

	proposal, ok := records[1].(domain.GovernanceProposal)
	require.True(t, ok)
	assert.Equal(t, uint64(5), proposal.ID)
	assert.Equal(t, "default", proposal.ProposalType)
	assert.Equal(t, uint64(22), proposal.ActivationEpoch)
	assert.JSONEq(t, `{"abstract":"x","title":"Upgrade"}`, string(proposal.Content))
	assert.Equal(t, `{"abstract":"x","title":"Upgrade"}`, string(proposal.Content))

	assert.Equal(t, domain.ProposalTally{ProposalID: 4, Status: "voting", Yay: "100", Nay: "0", Abstain: "3", Height: 120}, records[2])
}

func TestExtract_PoS(t *testing.T) {
	records := extract(t, domain.DomainPoS, fixtureBlock())

	assert.Equal(t, []domain.Record{
		domain.ValidatorBondDelta{Height: 120, TxIndex: 2, EventIndex: 1, TxHash: "TX2", BondKind: "bond", Validator: "tnam1val", Delegator: "tnam1alice", Amount: "1000", Epoch: 15},
		domain.ValidatorBondDelta{Height: 120, TxIndex: 2, EventIndex: 2, TxHash: "TX2", BondKind: "redelegate", Validator: "tnam1val", Delegator: "tnam1alice", DestinationValidator: "tnam1other", Amount: "5"},
		domain.ValidatorState{Address: "tnam1val", State: "consensus", CommissionRate: "0.05", Epoch: 15, Height: 120},
		domain.ValidatorPower{PubKey: "DEAD", PubKeyType: "ed25519", Power: 42, Height: 120},
	}, records)
}

func TestExtract_Rewards(t *testing.T) {
	records := extract(t, domain.DomainRewards, fixtureBlock())

	assert.Equal(t, []domain.Record{
		domain.RewardClaim{TxHash: "TX2", EventIndex: 3, Owner: "tnam1alice", Validator: "tnam1val", Amount: "12", Height: 120},
		domain.InflationReward{Epoch: 15, Validator: "tnam1val", Amount: "77", Height: 120},
	}, records)
}

func TestExtract_Parameters(t *testing.T) {
	records := extract(t, domain.DomainParameters, fixtureBlock())

	assert.Equal(t, []domain.Record{
		domain.ParameterChange{Name: "max_proposal_period", Value: "27", Height: 120},
		domain.ParameterChange{Name: "min_num_of_blocks", Value: "4", Height: 120},
		domain.ParameterChange{Name: "consensus.block.max_gas", Value: "-1", Height: 120},
	}, records)
}

func TestExtract_Parameters_EmptyBlock(t *testing.T) {
	block := &domain.RawBlock{Height: 100, Hash: "00", Time: blockTime}

	records := extract(t, domain.DomainParameters, block)
	assert.Empty(t, records)
}

func TestExtract_Transactions(t *testing.T) {
	records := extract(t, domain.DomainTransactions, fixtureBlock())
	require.Len(t, records, 3)

	first := records[0].(domain.Transaction)
	assert.Equal(t, "TX0", first.Hash)
	assert.Equal(t, "vote_proposal", first.TxKind)
	assert.Equal(t, len("tx-zero"), first.Size)
	assert.Equal(t, int64(90), first.GasUsed)

	var events []domain.Event
	require.NoError(t, json.Unmarshal(first.Events, &events))
	assert.Len(t, events, 2)

	failed := records[1].(domain.Transaction)
	assert.Equal(t, uint32(1), failed.Code)
	assert.Equal(t, domain.UNKNOWN_TX_KIND, failed.TxKind)
	assert.Equal(t, "out of gas", failed.Log)
}

func TestExtract_Deterministic(t *testing.T) {
	for _, d := range domain.AllDomains {
		t.Run(string(d), func(t *testing.T) {
			first := extract(t, d, fixtureBlock())
			second := extract(t, d, fixtureBlock())
			assert.Equal(t, first, second)
		})
	}
}

func TestExtract_HeightMismatch(t *testing.T) {
	ex, err := extractor.New(domain.DomainChain)
	require.NoError(t, err)

	_, err = ex.Extract(fixtureBlock(), 121)
	assert.ErrorIs(t, err, domain.ErrPermanent)
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		domain domain.Domain
		event  domain.Event
	}{
		{"vote without voter", domain.DomainGovernance, ev("proposal_vote", "proposal_id", "1", "vote", "yay")},
		{"unknown vote", domain.DomainGovernance, ev("proposal_vote", "proposal_id", "1", "voter", "v", "vote", "maybe")},
		{"non numeric proposal id", domain.DomainGovernance, ev("proposal_tally", "proposal_id", "x", "status", "passed", "yay", "1", "nay", "1", "abstain", "1")},
		{"voting ends before start", domain.DomainGovernance, ev("proposal_submitted", "proposal_id", "1", "proposer", "p", "kind", "default", "voting_start_epoch", "9", "voting_end_epoch", "3")},
		{"negative bond amount", domain.DomainPoS, ev("bond", "validator", "v", "source", "s", "amount", "-5")},
		{"redelegate without destination", domain.DomainPoS, ev("redelegate", "validator", "v", "source", "s", "amount", "5")},
		{"bad commission", domain.DomainPoS, ev("validator_state", "validator", "v", "state", "jailed", "commission_rate", "abc")},
		{"claim without amount", domain.DomainRewards, ev("claim_rewards", "source", "s")},
		{"parameter without name", domain.DomainParameters, ev("parameters_changed", "", "1")},
		{"balance without token", domain.DomainChain, ev("balance_change", "owner", "tnam1alice", "amount", "5")},
		{"negative balance", domain.DomainChain, ev("balance_change", "owner", "tnam1alice", "token", "tnam1nam", "amount", "-5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := &domain.RawBlock{
				Height: 9,
				Txs: []domain.RawTx{{
					Index:  0,
					Hash:   "TXM",
					Events: []domain.Event{tt.event},
				}},
			}

			ex, err := extractor.New(tt.domain)
			require.NoError(t, err)

			records, err := ex.Extract(block, 9)
			assert.Nil(t, records)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrPermanent)

			var permanent *domain.PermanentError
			require.ErrorAs(t, err, &permanent)
			assert.Equal(t, tt.domain, permanent.Domain)
			assert.Equal(t, uint64(9), permanent.Height)
		})
	}
}

func TestExtract_FailedTxEventsIgnored(t *testing.T) {
	block := &domain.RawBlock{
		Height: 10,
		Txs: []domain.RawTx{{
			Index: 0, Hash: "TXF", Code: 3,
			Events: []domain.Event{ev("proposal_vote", "proposal_id", "1", "voter", "v", "vote", "nay")},
		}},
	}

	assert.Empty(t, extract(t, domain.DomainGovernance, block))
	assert.Len(t, extract(t, domain.DomainTransactions, block), 1)
}
