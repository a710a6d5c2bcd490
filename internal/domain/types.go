package domain

import (
	"fmt"
	"time"
)

// Domain names one independently checkpointed slice of indexed state
type Domain string

const (
	DomainChain        Domain = "chain"
	DomainGovernance   Domain = "governance"
	DomainPoS          Domain = "pos"
	DomainRewards      Domain = "rewards"
	DomainParameters   Domain = "parameters"
	DomainTransactions Domain = "transactions"
)

// AllDomains lists every indexer domain in a stable order
var AllDomains = []Domain{
	DomainChain,
	DomainGovernance,
	DomainPoS,
	DomainRewards,
	DomainParameters,
	DomainTransactions,
}

// Valid reports whether d is a known domain
func (d Domain) Valid() bool {
	for _, known := range AllDomains {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDomain converts a string into a known domain
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown domain: %q", s)
	}
	return d, nil
}

// Checkpoint is the highest height whose records are durably committed for a domain.
// A height of start-1 means nothing has been committed yet.
type Checkpoint struct {
	Domain      Domain
	Height      uint64
	CommittedAt time.Time
	WriterID    string
}

// Next returns the next height to process
func (c Checkpoint) Next() uint64 {
	return c.Height + 1
}

// Attribute is a single key/value pair of an ABCI event
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is an ordered ABCI event as emitted by the chain
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// Attr returns the first attribute value for key
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// RawTx is a transaction of a block together with its execution result
type RawTx struct {
	Index     int
	Hash      string
	Data      []byte
	Code      uint32
	Codespace string
	Log       string
	GasWanted int64
	GasUsed   int64
	Events    []Event
}

// Succeeded reports whether the transaction was applied
func (t RawTx) Succeeded() bool {
	return t.Code == 0
}

// ValidatorUpdate is a voting power change emitted at the end of a block
type ValidatorUpdate struct {
	PubKeyType string
	PubKey     string
	Power      int64
}

// ParamUpdate is a flattened consensus parameter change
type ParamUpdate struct {
	Name  string
	Value string
}

// RawBlock is the full content of one finalized height as returned by the consensus node.
// It is transient and never persisted.
type RawBlock struct {
	Height           uint64
	Hash             string
	ChainID          string
	Time             time.Time
	ProposerAddress  string
	Txs              []RawTx
	BeginBlockEvents []Event
	EndBlockEvents   []Event
	ValidatorUpdates []ValidatorUpdate
	ParamUpdates     []ParamUpdate
}

// CommitNotification announces that a domain advanced its checkpoint
type CommitNotification struct {
	EventID     string    `json:"event_id"`
	Domain      Domain    `json:"domain"`
	Height      uint64    `json:"height"`
	Records     int       `json:"records"`
	CommittedAt time.Time `json:"committed_at"`
}
