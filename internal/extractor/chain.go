package extractor

import (
	"github.com/feral-file/namada-indexer/internal/domain"
)

func extractChain(block *domain.RawBlock) ([]domain.Record, error) {
	records := []domain.Record{
		domain.Block{
			Height:          block.Height,
			Hash:            block.Hash,
			ChainID:         block.ChainID,
			Time:            block.Time,
			ProposerAddress: block.ProposerAddress,
			NumTxs:          len(block.Txs),
		},
	}

	for _, e := range blockEvents(block) {
		switch {
		case e.Type == eventNewEpoch && e.txIndex < 0:
			epoch, err := requireUint(e.Event, "epoch")
			if err != nil {
				return nil, err
			}
			records = append(records, domain.Epoch{
				Epoch:       epoch,
				StartHeight: block.Height,
				StartTime:   block.Time,
			})

		case e.Type == eventBalanceChange:
			// amount is the balance after the change, the last change of a block wins
			owner, err := requireAttr(e.Event, "owner")
			if err != nil {
				return nil, err
			}
			token, err := requireAttr(e.Event, "token")
			if err != nil {
				return nil, err
			}
			amount, err := requireAmount(e.Event, "amount")
			if err != nil {
				return nil, err
			}
			records = append(records, domain.Balance{
				Owner:  owner,
				Token:  token,
				Amount: amount,
				Height: block.Height,
			})
		}
	}

	return records, nil
}
