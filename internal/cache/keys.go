package cache

import (
	"fmt"
	"sort"

	"github.com/feral-file/namada-indexer/internal/domain"
)

const (
	KeyLatestParameters = "parameters:latest"
	KeyLatestBlock      = "chain:block:latest"
	KeyActiveProposals  = "governance:proposals:active"
	KeyValidators       = "pos:validators"
)

// ProposalKey is the key of a single proposal
func ProposalKey(id uint64) string {
	return fmt.Sprintf("governance:proposal:%d", id)
}

// RewardClaimsKey is the key of the reward claims of an owner
func RewardClaimsKey(owner string) string {
	return "rewards:claims:" + owner
}

// InflationRewardsKey is the key of the inflation rewards of an epoch
func InflationRewardsKey(epoch uint64) string {
	return fmt.Sprintf("rewards:inflation:%d", epoch)
}

// BalancesKey is the key of the balances of an owner
func BalancesKey(owner string) string {
	return "chain:balances:" + owner
}

// KeysFor returns the sorted, de-duplicated cache keys made stale by committing records for d
func KeysFor(d domain.Domain, records []domain.Record) []string {
	set := make(map[string]struct{})
	add := func(key string) { set[key] = struct{}{} }

	for _, r := range records {
		switch rec := r.(type) {
		case domain.Block:
			add(KeyLatestBlock)
		case domain.Balance:
			add(BalancesKey(rec.Owner))
		case domain.GovernanceProposal:
			add(ProposalKey(rec.ID))
			add(KeyActiveProposals)
		case domain.ProposalTally:
			add(ProposalKey(rec.ProposalID))
			add(KeyActiveProposals)
		case domain.GovernanceVote:
			add(ProposalKey(rec.ProposalID))
		case domain.ValidatorState, domain.ValidatorPower, domain.ValidatorBondDelta:
			add(KeyValidators)
		case domain.RewardClaim:
			add(RewardClaimsKey(rec.Owner))
		case domain.InflationReward:
			add(InflationRewardsKey(rec.Epoch))
		case domain.ParameterChange:
			add(KeyLatestParameters)
		}
	}

	// the latest block summary changes with every chain commit, even an empty one
	if d == domain.DomainChain {
		add(KeyLatestBlock)
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
