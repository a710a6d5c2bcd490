package adapter

import (
	"context"
	"fmt"
	"time"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
)

// CometRPC defines the subset of the CometBFT RPC used by the indexer
//
//go:generate mockgen -source=cometbft.go -destination=../mocks/cometbft.go -package=mocks -mock_names=CometRPC=MockCometRPC
type CometRPC interface {
	// Status returns the node status including the latest block height
	Status(ctx context.Context) (*coretypes.ResultStatus, error)

	// Block returns the block at the given height
	Block(ctx context.Context, height *int64) (*coretypes.ResultBlock, error)

	// BlockResults returns the execution results of the block at the given height
	BlockResults(ctx context.Context, height *int64) (*coretypes.ResultBlockResults, error)
}

// NewCometRPC creates a CometBFT HTTP RPC client
func NewCometRPC(remote string, timeout time.Duration) (CometRPC, error) {
	seconds := uint(timeout / time.Second)
	if seconds == 0 {
		seconds = 1
	}

	client, err := rpchttp.NewWithTimeout(remote, "/websocket", seconds)
	if err != nil {
		return nil, fmt.Errorf("failed to create cometbft rpc client: %w", err)
	}

	return client, nil
}
