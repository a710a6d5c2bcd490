package extractor

import (
	"fmt"

	"github.com/feral-file/namada-indexer/internal/domain"
)

var proposalStatuses = map[string]bool{
	domain.PROPOSAL_STATUS_PENDING:  true,
	domain.PROPOSAL_STATUS_VOTING:   true,
	domain.PROPOSAL_STATUS_PASSED:   true,
	domain.PROPOSAL_STATUS_REJECTED: true,
	domain.PROPOSAL_STATUS_EXECUTED: true,
}

var voteValues = map[string]bool{
	domain.VOTE_YAY:     true,
	domain.VOTE_NAY:     true,
	domain.VOTE_ABSTAIN: true,
}

func extractGovernance(block *domain.RawBlock) ([]domain.Record, error) {
	var records []domain.Record

	for _, e := range blockEvents(block) {
		var (
			record domain.Record
			err    error
		)
		switch e.Type {
		case eventProposalSubmitted:
			record, err = proposalFromEvent(e.Event, block.Height)
		case eventProposalVote:
			record, err = voteFromEvent(e.Event, block.Height)
		case eventProposalTally:
			record, err = tallyFromEvent(e.Event, block.Height)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func proposalFromEvent(e domain.Event, height uint64) (domain.Record, error) {
	id, err := requireUint(e, "proposal_id")
	if err != nil {
		return nil, err
	}
	proposer, err := requireAttr(e, "proposer")
	if err != nil {
		return nil, err
	}
	kind, err := requireAttr(e, "kind")
	if err != nil {
		return nil, err
	}
	start, err := requireUint(e, "voting_start_epoch")
	if err != nil {
		return nil, err
	}
	end, err := requireUint(e, "voting_end_epoch")
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, fmt.Errorf("proposal %d ends at epoch %d before it starts at %d", id, end, start)
	}
	activation, err := optionalUint(e, "activation_epoch")
	if err != nil {
		return nil, err
	}
	rawContent, _ := e.Attr("content")
	content, err := canonicalContent(rawContent)
	if err != nil {
		return nil, fmt.Errorf("proposal %d has invalid content: %w", id, err)
	}

	return domain.GovernanceProposal{
		ID:               id,
		ProposalType:     kind,
		Proposer:         proposer,
		Content:          content,
		VotingStartEpoch: start,
		VotingEndEpoch:   end,
		ActivationEpoch:  activation,
		Height:           height,
	}, nil
}

func voteFromEvent(e domain.Event, height uint64) (domain.Record, error) {
	id, err := requireUint(e, "proposal_id")
	if err != nil {
		return nil, err
	}
	voter, err := requireAttr(e, "voter")
	if err != nil {
		return nil, err
	}
	vote, err := requireAttr(e, "vote")
	if err != nil {
		return nil, err
	}
	if !voteValues[vote] {
		return nil, fmt.Errorf("proposal %d has invalid vote %q", id, vote)
	}

	return domain.GovernanceVote{
		ProposalID: id,
		Voter:      voter,
		Vote:       vote,
		Height:     height,
	}, nil
}

func tallyFromEvent(e domain.Event, height uint64) (domain.Record, error) {
	id, err := requireUint(e, "proposal_id")
	if err != nil {
		return nil, err
	}
	status, err := requireAttr(e, "status")
	if err != nil {
		return nil, err
	}
	if !proposalStatuses[status] {
		return nil, fmt.Errorf("proposal %d has invalid status %q", id, status)
	}
	yay, err := requireAmount(e, "yay")
	if err != nil {
		return nil, err
	}
	nay, err := requireAmount(e, "nay")
	if err != nil {
		return nil, err
	}
	abstain, err := requireAmount(e, "abstain")
	if err != nil {
		return nil, err
	}

	return domain.ProposalTally{
		ProposalID: id,
		Status:     status,
		Yay:        yay,
		Nay:        nay,
		Abstain:    abstain,
		Height:     height,
	}, nil
}
