package extractor

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/gowebpki/jcs"

	"github.com/feral-file/namada-indexer/internal/domain"
)

// Event types emitted by the chain
const (
	eventNewEpoch          = "new_epoch"
	eventBalanceChange     = "balance_change"
	eventProposalSubmitted = "proposal_submitted"
	eventProposalVote      = "proposal_vote"
	eventProposalTally     = "proposal_tally"
	eventBond              = "bond"
	eventUnbond            = "unbond"
	eventWithdraw          = "withdraw"
	eventRedelegate        = "redelegate"
	eventValidatorState    = "validator_state"
	eventClaimRewards      = "claim_rewards"
	eventPoSRewards        = "pos_rewards"
	eventParametersChanged = "parameters_changed"
	eventTx                = "tx"
)

// locatedEvent is an event together with its position in the block
type locatedEvent struct {
	domain.Event
	// txIndex is -1 for begin and end block events
	txIndex    int
	txHash     string
	eventIndex int
}

// blockEvents returns begin block events, events of applied transactions and end block events, in that order
func blockEvents(block *domain.RawBlock) []locatedEvent {
	var out []locatedEvent
	for i, e := range block.BeginBlockEvents {
		out = append(out, locatedEvent{Event: e, txIndex: -1, eventIndex: i})
	}
	for _, tx := range block.Txs {
		if !tx.Succeeded() {
			continue
		}
		for i, e := range tx.Events {
			out = append(out, locatedEvent{Event: e, txIndex: tx.Index, txHash: tx.Hash, eventIndex: i})
		}
	}
	for i, e := range block.EndBlockEvents {
		out = append(out, locatedEvent{Event: e, txIndex: -1, eventIndex: i})
	}
	return out
}

func requireAttr(e domain.Event, key string) (string, error) {
	v, ok := e.Attr(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%s event missing %q attribute", e.Type, key)
	}
	return v, nil
}

func requireUint(e domain.Event, key string) (uint64, error) {
	v, err := requireAttr(e, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s event has invalid %q: %w", e.Type, key, err)
	}
	return n, nil
}

// optionalUint returns 0 when the attribute is absent
func optionalUint(e domain.Event, key string) (uint64, error) {
	if v, ok := e.Attr(key); !ok || v == "" {
		return 0, nil
	}
	return requireUint(e, key)
}

// requireAmount returns a non-negative integer amount in canonical decimal form
func requireAmount(e domain.Event, key string) (string, error) {
	v, err := requireAttr(e, key)
	if err != nil {
		return "", err
	}
	n, ok := new(big.Int).SetString(v, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("%s event has invalid amount %q in %q", e.Type, v, key)
	}
	return n.String(), nil
}

// optionalDecimal validates a decimal attribute such as a commission rate
func optionalDecimal(e domain.Event, key string) (string, error) {
	v, ok := e.Attr(key)
	if !ok || v == "" {
		return "", nil
	}
	if _, ok := new(big.Rat).SetString(v); !ok {
		return "", fmt.Errorf("%s event has invalid decimal %q in %q", e.Type, v, key)
	}
	return v, nil
}

// canonicalJSON encodes v as RFC 8785 canonical JSON
func canonicalJSON(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jcs.Transform(b)
}

// canonicalContent canonicalizes a JSON document, or encodes non-JSON text as a JSON string
func canonicalContent(content string) (json.RawMessage, error) {
	if content == "" {
		return json.RawMessage("null"), nil
	}
	if json.Valid([]byte(content)) {
		return jcs.Transform([]byte(content))
	}
	return canonicalJSON(content)
}
