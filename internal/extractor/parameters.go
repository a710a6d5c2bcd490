package extractor

import (
	"fmt"

	"github.com/feral-file/namada-indexer/internal/domain"
)

// extractParameters emits one change per attribute of parameters_changed events,
// followed by consensus parameter updates. A name changed twice keeps both records in order.
func extractParameters(block *domain.RawBlock) ([]domain.Record, error) {
	var records []domain.Record

	for _, e := range blockEvents(block) {
		if e.Type != eventParametersChanged {
			continue
		}
		for _, a := range e.Attributes {
			if a.Key == "" {
				return nil, fmt.Errorf("%s event has an attribute without a name", e.Type)
			}
			records = append(records, domain.ParameterChange{
				Name:   a.Key,
				Value:  a.Value,
				Height: block.Height,
			})
		}
	}

	for _, p := range block.ParamUpdates {
		records = append(records, domain.ParameterChange{
			Name:   p.Name,
			Value:  p.Value,
			Height: block.Height,
		})
	}

	return records, nil
}
