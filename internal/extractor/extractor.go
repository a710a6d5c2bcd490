package extractor

import (
	"fmt"

	"github.com/feral-file/namada-indexer/internal/domain"
)

// Extractor turns one block into the records of a single domain.
// Implementations are pure: the same block always yields the same records in the same order.
//
//go:generate mockgen -source=extractor.go -destination=../mocks/extractor.go -package=mocks -mock_names=Extractor=MockExtractor
type Extractor interface {
	// Domain returns the domain whose records are extracted
	Domain() domain.Domain

	// Extract returns the records derived from block, which must be at height.
	// Malformed input yields a *domain.PermanentError.
	Extract(block *domain.RawBlock, height uint64) ([]domain.Record, error)
}

type extractFunc func(block *domain.RawBlock) ([]domain.Record, error)

type extractor struct {
	domain  domain.Domain
	extract extractFunc
}

func (e *extractor) Domain() domain.Domain {
	return e.domain
}

func (e *extractor) Extract(block *domain.RawBlock, height uint64) ([]domain.Record, error) {
	if block == nil {
		return nil, domain.NewPermanentError(e.domain, height, "nil block")
	}
	if block.Height != height {
		return nil, domain.NewPermanentError(e.domain, height, "block is at height %d", block.Height)
	}

	records, err := e.extract(block)
	if err != nil {
		return nil, &domain.PermanentError{Domain: e.domain, Height: height, Err: err}
	}
	return records, nil
}

// New returns the extractor of a domain
func New(d domain.Domain) (Extractor, error) {
	var fn extractFunc
	switch d {
	case domain.DomainChain:
		fn = extractChain
	case domain.DomainGovernance:
		fn = extractGovernance
	case domain.DomainPoS:
		fn = extractPoS
	case domain.DomainRewards:
		fn = extractRewards
	case domain.DomainParameters:
		fn = extractParameters
	case domain.DomainTransactions:
		fn = extractTransactions
	default:
		return nil, fmt.Errorf("no extractor for domain %q", d)
	}
	return &extractor{domain: d, extract: fn}, nil
}
