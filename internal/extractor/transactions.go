package extractor

import (
	"fmt"

	"github.com/feral-file/namada-indexer/internal/domain"
)

// extractTransactions indexes every transaction of the block, including failed ones
func extractTransactions(block *domain.RawBlock) ([]domain.Record, error) {
	records := make([]domain.Record, 0, len(block.Txs))

	for _, tx := range block.Txs {
		if tx.Hash == "" {
			return nil, fmt.Errorf("tx %d has no hash", tx.Index)
		}

		events := tx.Events
		if events == nil {
			events = []domain.Event{}
		}
		payload, err := canonicalJSON(events)
		if err != nil {
			return nil, fmt.Errorf("tx %s events: %w", tx.Hash, err)
		}

		records = append(records, domain.Transaction{
			Hash:      tx.Hash,
			Height:    block.Height,
			Index:     tx.Index,
			Code:      tx.Code,
			Codespace: tx.Codespace,
			TxKind:    txKind(tx),
			GasWanted: tx.GasWanted,
			GasUsed:   tx.GasUsed,
			Size:      len(tx.Data),
			Log:       tx.Log,
			Events:    payload,
		})
	}

	return records, nil
}

func txKind(tx domain.RawTx) string {
	for _, e := range tx.Events {
		if e.Type != eventTx {
			continue
		}
		if kind, ok := e.Attr("kind"); ok && kind != "" {
			return kind
		}
	}
	return domain.UNKNOWN_TX_KIND
}
