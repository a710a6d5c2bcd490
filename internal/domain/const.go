package domain

const (
	// Proposal tally statuses
	PROPOSAL_STATUS_PENDING  = "pending"
	PROPOSAL_STATUS_VOTING   = "voting"
	PROPOSAL_STATUS_PASSED   = "passed"
	PROPOSAL_STATUS_REJECTED = "rejected"
	PROPOSAL_STATUS_EXECUTED = "executed"

	// Vote values
	VOTE_YAY     = "yay"
	VOTE_NAY     = "nay"
	VOTE_ABSTAIN = "abstain"

	// Bond delta kinds
	BOND_KIND_BOND       = "bond"
	BOND_KIND_UNBOND     = "unbond"
	BOND_KIND_WITHDRAW   = "withdraw"
	BOND_KIND_REDELEGATE = "redelegate"

	// UNKNOWN_TX_KIND is used when a transaction carries no kind attribute
	UNKNOWN_TX_KIND = "unknown"
)

// IsActiveProposalStatus reports whether votes can still change the outcome
func IsActiveProposalStatus(status string) bool {
	return status == PROPOSAL_STATUS_PENDING || status == PROPOSAL_STATUS_VOTING
}
