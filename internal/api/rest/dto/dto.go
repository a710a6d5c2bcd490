package dto

import (
	"time"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/store"
	"github.com/feral-file/namada-indexer/internal/store/schema"
)

// Page wraps one page of a list endpoint
type Page[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPage builds a page, never serializing items as null
func NewPage[T any](items []T, limit, offset int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Limit: limit, Offset: offset}
}

// ProposalResponse is a governance proposal with its current tally
type ProposalResponse struct {
	schema.GovernanceProposal
	Status  string  `json:"status"`
	Yay     *string `json:"yayVotes,omitempty"`
	Nay     *string `json:"nayVotes,omitempty"`
	Abstain *string `json:"abstainVotes,omitempty"`
}

// NewProposalResponse flattens a proposal and its tally
func NewProposalResponse(p store.Proposal) ProposalResponse {
	resp := ProposalResponse{
		GovernanceProposal: p.GovernanceProposal,
		Status:             p.Status(),
	}
	if p.Tally != nil {
		resp.Yay = &p.Tally.Yay
		resp.Nay = &p.Tally.Nay
		resp.Abstain = &p.Tally.Abstain
	}
	return resp
}

// NewProposalResponses maps a list of proposals
func NewProposalResponses(proposals []store.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, NewProposalResponse(p))
	}
	return out
}

// CrawlerResponse is the progress of one domain indexer
type CrawlerResponse struct {
	Name               domain.Domain `json:"name"`
	LastProcessedBlock uint64        `json:"lastProcessedBlock"`
	Timestamp          time.Time     `json:"timestamp"`
	WriterID           string        `json:"writerId,omitempty"`
}

// NewCrawlerResponses maps checkpoints
func NewCrawlerResponses(checkpoints []domain.Checkpoint) []CrawlerResponse {
	out := make([]CrawlerResponse, 0, len(checkpoints))
	for _, cp := range checkpoints {
		out = append(out, CrawlerResponse{
			Name:               cp.Domain,
			LastProcessedBlock: cp.Height,
			Timestamp:          cp.CommittedAt,
			WriterID:           cp.WriterID,
		})
	}
	return out
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Commit  string `json:"commit,omitempty"`
}
