package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/namada-indexer/internal/cache"
	"github.com/feral-file/namada-indexer/internal/domain"
)

func TestKeysFor(t *testing.T) {
	tests := []struct {
		name    string
		domain  domain.Domain
		records []domain.Record
		want    []string
	}{
		{
			name:   "chain always refreshes the latest block",
			domain: domain.DomainChain,
			want:   []string{cache.KeyLatestBlock},
		},
		{
			name:   "chain balances",
			domain: domain.DomainChain,
			records: []domain.Record{
				domain.Balance{Owner: "tnam1bob", Token: "nam"},
				domain.Balance{Owner: "tnam1alice", Token: "nam"},
				domain.Balance{Owner: "tnam1alice", Token: "btc"},
			},
			want: []string{"chain:balances:tnam1alice", "chain:balances:tnam1bob", cache.KeyLatestBlock},
		},
		{
			name:   "governance",
			domain: domain.DomainGovernance,
			records: []domain.Record{
				domain.GovernanceProposal{ID: 7},
				domain.ProposalTally{ProposalID: 7},
				domain.GovernanceVote{ProposalID: 3, Voter: "v"},
			},
			want: []string{"governance:proposal:3", "governance:proposal:7", cache.KeyActiveProposals},
		},
		{
			name:   "pos",
			domain: domain.DomainPoS,
			records: []domain.Record{
				domain.ValidatorBondDelta{Validator: "a"},
				domain.ValidatorPower{PubKey: "k"},
			},
			want: []string{cache.KeyValidators},
		},
		{
			name:   "rewards",
			domain: domain.DomainRewards,
			records: []domain.Record{
				domain.RewardClaim{Owner: "tnam1alice"},
				domain.RewardClaim{Owner: "tnam1alice", EventIndex: 1},
				domain.InflationReward{Epoch: 12},
			},
			want: []string{"rewards:claims:tnam1alice", "rewards:inflation:12"},
		},
		{
			name:    "parameters",
			domain:  domain.DomainParameters,
			records: []domain.Record{domain.ParameterChange{Name: "a"}, domain.ParameterChange{Name: "b"}},
			want:    []string{cache.KeyLatestParameters},
		},
		{
			name:    "empty parameters block",
			domain:  domain.DomainParameters,
			records: nil,
			want:    []string{},
		},
		{
			name:    "transactions are not cached",
			domain:  domain.DomainTransactions,
			records: []domain.Record{domain.Transaction{Hash: "A"}},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cache.KeysFor(tt.domain, tt.records))
		})
	}
}
