package extractor

import (
	"github.com/feral-file/namada-indexer/internal/domain"
)

func extractRewards(block *domain.RawBlock) ([]domain.Record, error) {
	var records []domain.Record

	for _, e := range blockEvents(block) {
		switch {
		case e.Type == eventClaimRewards && e.txIndex >= 0:
			owner, err := requireAttr(e.Event, "source")
			if err != nil {
				return nil, err
			}
			amount, err := requireAmount(e.Event, "amount")
			if err != nil {
				return nil, err
			}
			validator, _ := e.Attr("validator")
			records = append(records, domain.RewardClaim{
				TxHash:     e.txHash,
				EventIndex: e.eventIndex,
				Owner:      owner,
				Validator:  validator,
				Amount:     amount,
				Height:     block.Height,
			})

		case e.Type == eventPoSRewards:
			epoch, err := requireUint(e.Event, "epoch")
			if err != nil {
				return nil, err
			}
			validator, err := requireAttr(e.Event, "validator")
			if err != nil {
				return nil, err
			}
			amount, err := requireAmount(e.Event, "amount")
			if err != nil {
				return nil, err
			}
			records = append(records, domain.InflationReward{
				Epoch:     epoch,
				Validator: validator,
				Amount:    amount,
				Height:    block.Height,
			})
		}
	}

	return records, nil
}
