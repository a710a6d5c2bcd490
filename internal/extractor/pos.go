package extractor

import (
	"github.com/feral-file/namada-indexer/internal/domain"
)

var bondKinds = map[string]string{
	eventBond:       domain.BOND_KIND_BOND,
	eventUnbond:     domain.BOND_KIND_UNBOND,
	eventWithdraw:   domain.BOND_KIND_WITHDRAW,
	eventRedelegate: domain.BOND_KIND_REDELEGATE,
}

func extractPoS(block *domain.RawBlock) ([]domain.Record, error) {
	var records []domain.Record

	for _, e := range blockEvents(block) {
		if kind, ok := bondKinds[e.Type]; ok {
			if e.txIndex < 0 {
				continue
			}
			delta, err := bondDeltaFromEvent(e, kind, block.Height)
			if err != nil {
				return nil, err
			}
			records = append(records, delta)
			continue
		}

		if e.Type == eventValidatorState {
			state, err := validatorStateFromEvent(e.Event, block.Height)
			if err != nil {
				return nil, err
			}
			records = append(records, state)
		}
	}

	for _, u := range block.ValidatorUpdates {
		records = append(records, domain.ValidatorPower{
			PubKey:     u.PubKey,
			PubKeyType: u.PubKeyType,
			Power:      u.Power,
			Height:     block.Height,
		})
	}

	return records, nil
}

func bondDeltaFromEvent(e locatedEvent, kind string, height uint64) (domain.Record, error) {
	validator, err := requireAttr(e.Event, "validator")
	if err != nil {
		return nil, err
	}
	source, err := requireAttr(e.Event, "source")
	if err != nil {
		return nil, err
	}
	amount, err := requireAmount(e.Event, "amount")
	if err != nil {
		return nil, err
	}
	epoch, err := optionalUint(e.Event, "epoch")
	if err != nil {
		return nil, err
	}

	var destination string
	if kind == domain.BOND_KIND_REDELEGATE {
		destination, err = requireAttr(e.Event, "dest_validator")
		if err != nil {
			return nil, err
		}
	}

	return domain.ValidatorBondDelta{
		Height:               height,
		TxIndex:              e.txIndex,
		EventIndex:           e.eventIndex,
		TxHash:               e.txHash,
		BondKind:             kind,
		Validator:            validator,
		Delegator:            source,
		DestinationValidator: destination,
		Amount:               amount,
		Epoch:                epoch,
	}, nil
}

func validatorStateFromEvent(e domain.Event, height uint64) (domain.Record, error) {
	validator, err := requireAttr(e, "validator")
	if err != nil {
		return nil, err
	}
	state, err := requireAttr(e, "state")
	if err != nil {
		return nil, err
	}
	commission, err := optionalDecimal(e, "commission_rate")
	if err != nil {
		return nil, err
	}
	epoch, err := optionalUint(e, "epoch")
	if err != nil {
		return nil, err
	}

	return domain.ValidatorState{
		Address:        validator,
		State:          state,
		CommissionRate: commission,
		Epoch:          epoch,
		Height:         height,
	}, nil
}
