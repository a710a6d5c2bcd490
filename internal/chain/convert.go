package chain

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"

	"github.com/feral-file/namada-indexer/internal/domain"
)

// toRawBlock merges a block and its results into a RawBlock.
// Any inconsistency between the two responses is reported as a permanent error.
func toRawBlock(height uint64, blk *coretypes.ResultBlock, results *coretypes.ResultBlockResults) (*domain.RawBlock, error) {
	if blk == nil || blk.Block == nil {
		return nil, domain.NewPermanentError("", height, "empty block response")
	}
	if results == nil {
		return nil, domain.NewPermanentError("", height, "empty block results response")
	}
	if uint64(blk.Block.Height) != height { //nolint:gosec,G115
		return nil, domain.NewPermanentError("", height, "block response has height %d", blk.Block.Height)
	}
	if uint64(results.Height) != height { //nolint:gosec,G115
		return nil, domain.NewPermanentError("", height, "block results response has height %d", results.Height)
	}
	if len(results.TxsResults) != len(blk.Block.Txs) {
		return nil, domain.NewPermanentError("", height, "block has %d txs but %d results",
			len(blk.Block.Txs), len(results.TxsResults))
	}

	raw := &domain.RawBlock{
		Height:           height,
		Hash:             blk.BlockID.Hash.String(),
		ChainID:          blk.Block.ChainID,
		Time:             blk.Block.Time.UTC(),
		ProposerAddress:  blk.Block.ProposerAddress.String(),
		Txs:              make([]domain.RawTx, 0, len(blk.Block.Txs)),
		BeginBlockEvents: toEvents(results.BeginBlockEvents),
		EndBlockEvents:   toEvents(results.EndBlockEvents),
	}

	for i, tx := range blk.Block.Txs {
		res := results.TxsResults[i]
		if res == nil {
			return nil, domain.NewPermanentError("", height, "missing result for tx %d", i)
		}
		raw.Txs = append(raw.Txs, domain.RawTx{
			Index:     i,
			Hash:      fmt.Sprintf("%X", tx.Hash()),
			Data:      tx,
			Code:      res.Code,
			Codespace: res.Codespace,
			Log:       res.Log,
			GasWanted: res.GasWanted,
			GasUsed:   res.GasUsed,
			Events:    toEvents(res.Events),
		})
	}

	for _, u := range results.ValidatorUpdates {
		update, err := toValidatorUpdate(u)
		if err != nil {
			return nil, domain.NewPermanentError("", height, "%v", err)
		}
		raw.ValidatorUpdates = append(raw.ValidatorUpdates, update)
	}

	raw.ParamUpdates = toParamUpdates(results.ConsensusParamUpdates)

	return raw, nil
}

func toEvents(events []abci.Event) []domain.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		attrs := make([]domain.Attribute, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs = append(attrs, domain.Attribute{Key: a.Key, Value: a.Value})
		}
		out = append(out, domain.Event{Type: e.Type, Attributes: attrs})
	}
	return out
}

func toValidatorUpdate(u abci.ValidatorUpdate) (domain.ValidatorUpdate, error) {
	switch {
	case len(u.PubKey.GetEd25519()) > 0:
		return domain.ValidatorUpdate{
			PubKeyType: "ed25519",
			PubKey:     strings.ToUpper(hex.EncodeToString(u.PubKey.GetEd25519())),
			Power:      u.Power,
		}, nil
	case len(u.PubKey.GetSecp256K1()) > 0:
		return domain.ValidatorUpdate{
			PubKeyType: "secp256k1",
			PubKey:     strings.ToUpper(hex.EncodeToString(u.PubKey.GetSecp256K1())),
			Power:      u.Power,
		}, nil
	default:
		return domain.ValidatorUpdate{}, fmt.Errorf("validator update without a supported public key")
	}
}

// toParamUpdates flattens consensus parameter changes into dotted names
func toParamUpdates(params *cmtproto.ConsensusParams) []domain.ParamUpdate {
	if params == nil {
		return nil
	}

	var out []domain.ParamUpdate
	if params.Block != nil {
		out = append(out,
			domain.ParamUpdate{Name: "consensus.block.max_bytes", Value: strconv.FormatInt(params.Block.MaxBytes, 10)},
			domain.ParamUpdate{Name: "consensus.block.max_gas", Value: strconv.FormatInt(params.Block.MaxGas, 10)},
		)
	}
	if params.Evidence != nil {
		out = append(out,
			domain.ParamUpdate{Name: "consensus.evidence.max_age_num_blocks", Value: strconv.FormatInt(params.Evidence.MaxAgeNumBlocks, 10)},
			domain.ParamUpdate{Name: "consensus.evidence.max_age_duration", Value: params.Evidence.MaxAgeDuration.String()},
			domain.ParamUpdate{Name: "consensus.evidence.max_bytes", Value: strconv.FormatInt(params.Evidence.MaxBytes, 10)},
		)
	}
	if params.Validator != nil {
		out = append(out, domain.ParamUpdate{
			Name:  "consensus.validator.pub_key_types",
			Value: strings.Join(params.Validator.PubKeyTypes, ","),
		})
	}
	return out
}
