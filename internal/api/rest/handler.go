package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/api/rest/dto"
	"github.com/feral-file/namada-indexer/internal/cache"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/store"
	"github.com/feral-file/namada-indexer/internal/store/schema"
)

const HEALTH_CHECK_TIMEOUT = 2 * time.Second

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck reports database connectivity
	// GET /health
	HealthCheck(c *gin.Context)

	// GetLatestBlock returns the highest indexed block
	// GET /api/v1/chain/blocks/latest
	GetLatestBlock(c *gin.Context)

	// GetBlock returns a block by height
	// GET /api/v1/chain/blocks/:height
	GetBlock(c *gin.Context)

	// GetBlockTransactions returns the transactions of a block
	// GET /api/v1/chain/blocks/:height/transactions
	GetBlockTransactions(c *gin.Context)

	// GetParameters returns the latest chain and consensus parameters
	// GET /api/v1/chain/parameters
	GetParameters(c *gin.Context)

	// GetBalances returns the latest balance of every token held by an address
	// GET /api/v1/chain/balances/:address
	GetBalances(c *gin.Context)

	// ListProposals returns proposals, newest first
	// GET /api/v1/gov/proposals?status=<status>&limit=<limit>&offset=<offset>
	ListProposals(c *gin.Context)

	// GetActiveProposals returns proposals that are pending or in voting
	// GET /api/v1/gov/proposals/active
	GetActiveProposals(c *gin.Context)

	// GetProposal returns a proposal with its tally
	// GET /api/v1/gov/proposals/:id
	GetProposal(c *gin.Context)

	// GetProposalVotes returns the current votes of a proposal
	// GET /api/v1/gov/proposals/:id/votes?limit=<limit>&offset=<offset>
	GetProposalVotes(c *gin.Context)

	// ListValidators returns the latest state of every validator
	// GET /api/v1/pos/validators?state=<state>
	// GET /api/v1/chain/validators?state=<state>
	ListValidators(c *gin.Context)

	// GetBonds returns the bond history of a delegator or validator
	// GET /api/v1/pos/bonds/:address?limit=<limit>&offset=<offset>
	GetBonds(c *gin.Context)

	// GetRewardClaims returns the reward claims of an owner
	// GET /api/v1/pos/rewards/:address?limit=<limit>&offset=<offset>
	GetRewardClaims(c *gin.Context)

	// GetInflationRewards returns the rewards minted in an epoch
	// GET /api/v1/pos/inflation/:epoch
	GetInflationRewards(c *gin.Context)

	// GetTransaction returns a transaction by hash
	// GET /api/v1/transactions/:hash
	GetTransaction(c *gin.Context)

	// ListCrawlers returns the checkpoint of every domain indexer
	// GET /api/v1/crawlers
	ListCrawlers(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store  store.Store
	cache  cache.Cache
	commit string
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, c cache.Cache, commit string) Handler {
	return &handler{
		store:  st,
		cache:  c,
		commit: commit,
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), HEALTH_CHECK_TIMEOUT)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.WarnCtx(ctx, "Health check failed", zap.Error(err))
		respondServiceUnavailable(c, "Database unreachable", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "namada-indexer-webserver",
		Commit:  h.commit,
	})
}

func (h *handler) GetLatestBlock(c *gin.Context) {
	block, err := cache.Fetch(c.Request.Context(), h.cache, cache.KeyLatestBlock, h.store.GetLatestBlock)
	if err != nil {
		respondInternalError(c, err, "Failed to get latest block")
		return
	}
	if block == nil {
		respondNotFound(c, "No block indexed yet")
		return
	}

	c.JSON(http.StatusOK, block)
}

func (h *handler) GetBlock(c *gin.Context) {
	height, err := parseUintParam(c, "height")
	if err != nil {
		respondBadRequest(c, "Invalid block height", err.Error())
		return
	}

	block, err := h.store.GetBlockByHeight(c.Request.Context(), height)
	if err != nil {
		respondInternalError(c, err, "Failed to get block", zap.Uint64("height", height))
		return
	}
	if block == nil {
		respondNotFound(c, "Block not found")
		return
	}

	c.JSON(http.StatusOK, block)
}

func (h *handler) GetBlockTransactions(c *gin.Context) {
	height, err := parseUintParam(c, "height")
	if err != nil {
		respondBadRequest(c, "Invalid block height", err.Error())
		return
	}

	block, err := h.store.GetBlockByHeight(c.Request.Context(), height)
	if err != nil {
		respondInternalError(c, err, "Failed to get block", zap.Uint64("height", height))
		return
	}
	if block == nil {
		respondNotFound(c, "Block not found")
		return
	}

	txs, err := h.store.GetTransactionsByHeight(c.Request.Context(), height)
	if err != nil {
		respondInternalError(c, err, "Failed to get transactions", zap.Uint64("height", height))
		return
	}

	c.JSON(http.StatusOK, orEmpty(txs))
}

func (h *handler) GetParameters(c *gin.Context) {
	params, err := cache.Fetch(c.Request.Context(), h.cache, cache.KeyLatestParameters, h.store.GetParameters)
	if err != nil {
		respondInternalError(c, err, "Failed to get parameters")
		return
	}

	c.JSON(http.StatusOK, orEmpty(params))
}

func (h *handler) GetBalances(c *gin.Context) {
	owner := strings.TrimSpace(c.Param("address"))
	if owner == "" {
		respondBadRequest(c, "Address is required")
		return
	}

	balances, err := cache.Fetch(c.Request.Context(), h.cache, cache.BalancesKey(owner),
		func(ctx context.Context) ([]schema.Balance, error) {
			return h.store.GetBalancesByOwner(ctx, owner)
		})
	if err != nil {
		respondInternalError(c, err, "Failed to get balances", zap.String("address", owner))
		return
	}

	c.JSON(http.StatusOK, orEmpty(balances))
}

func (h *handler) ListProposals(c *gin.Context) {
	params, err := ParseListProposalsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	proposals, err := h.store.GetProposals(c.Request.Context(), store.ProposalFilter{
		Status: params.Status,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list proposals")
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(dto.NewProposalResponses(proposals), params.Limit, params.Offset))
}

func (h *handler) GetActiveProposals(c *gin.Context) {
	proposals, err := cache.Fetch(c.Request.Context(), h.cache, cache.KeyActiveProposals, h.store.GetActiveProposals)
	if err != nil {
		respondInternalError(c, err, "Failed to get active proposals")
		return
	}

	c.JSON(http.StatusOK, dto.NewProposalResponses(proposals))
}

func (h *handler) GetProposal(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid proposal id", err.Error())
		return
	}

	proposal, err := h.fetchProposal(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get proposal", zap.Uint64("id", id))
		return
	}
	if proposal == nil {
		respondNotFound(c, "Proposal not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewProposalResponse(*proposal))
}

func (h *handler) GetProposalVotes(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid proposal id", err.Error())
		return
	}
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	proposal, err := h.fetchProposal(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get proposal", zap.Uint64("id", id))
		return
	}
	if proposal == nil {
		respondNotFound(c, "Proposal not found")
		return
	}

	votes, err := h.store.GetProposalVotes(c.Request.Context(), id, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to get proposal votes", zap.Uint64("id", id))
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(votes, params.Limit, params.Offset))
}

func (h *handler) ListValidators(c *gin.Context) {
	var params ListValidatorsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	load := func(ctx context.Context) ([]schema.Validator, error) {
		return h.store.GetValidators(ctx, params.State)
	}

	var (
		validators []schema.Validator
		err        error
	)
	if params.State == "" {
		validators, err = cache.Fetch(c.Request.Context(), h.cache, cache.KeyValidators, load)
	} else {
		validators, err = load(c.Request.Context())
	}
	if err != nil {
		respondInternalError(c, err, "Failed to list validators")
		return
	}

	c.JSON(http.StatusOK, orEmpty(validators))
}

func (h *handler) GetBonds(c *gin.Context) {
	address := strings.TrimSpace(c.Param("address"))
	if address == "" {
		respondBadRequest(c, "Address is required")
		return
	}
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	bonds, err := h.store.GetBondsByAddress(c.Request.Context(), address, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to get bonds", zap.String("address", address))
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(bonds, params.Limit, params.Offset))
}

func (h *handler) GetRewardClaims(c *gin.Context) {
	owner := strings.TrimSpace(c.Param("address"))
	if owner == "" {
		respondBadRequest(c, "Address is required")
		return
	}
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	load := func(ctx context.Context) ([]schema.RewardClaim, error) {
		return h.store.GetRewardClaimsByOwner(ctx, owner, params.Limit, params.Offset)
	}

	// only the default first page is cached
	var claims []schema.RewardClaim
	if params.IsFirstPage() {
		claims, err = cache.Fetch(c.Request.Context(), h.cache, cache.RewardClaimsKey(owner), load)
	} else {
		claims, err = load(c.Request.Context())
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get reward claims", zap.String("address", owner))
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(claims, params.Limit, params.Offset))
}

func (h *handler) GetInflationRewards(c *gin.Context) {
	epoch, err := parseUintParam(c, "epoch")
	if err != nil {
		respondBadRequest(c, "Invalid epoch", err.Error())
		return
	}

	rewards, err := cache.Fetch(c.Request.Context(), h.cache, cache.InflationRewardsKey(epoch),
		func(ctx context.Context) ([]schema.InflationReward, error) {
			return h.store.GetInflationRewardsByEpoch(ctx, epoch)
		})
	if err != nil {
		respondInternalError(c, err, "Failed to get inflation rewards", zap.Uint64("epoch", epoch))
		return
	}

	c.JSON(http.StatusOK, orEmpty(rewards))
}

func (h *handler) GetTransaction(c *gin.Context) {
	hash := strings.ToUpper(strings.TrimSpace(c.Param("hash")))
	if hash == "" {
		respondBadRequest(c, "Transaction hash is required")
		return
	}

	tx, err := h.store.GetTransactionByHash(c.Request.Context(), hash)
	if err != nil {
		respondInternalError(c, err, "Failed to get transaction", zap.String("hash", hash))
		return
	}
	if tx == nil {
		respondNotFound(c, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, tx)
}

func (h *handler) ListCrawlers(c *gin.Context) {
	checkpoints, err := h.store.ListCheckpoints(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list crawlers")
		return
	}

	c.JSON(http.StatusOK, dto.NewCrawlerResponses(checkpoints))
}

func (h *handler) fetchProposal(ctx context.Context, id uint64) (*store.Proposal, error) {
	return cache.Fetch(ctx, h.cache, cache.ProposalKey(id), func(ctx context.Context) (*store.Proposal, error) {
		return h.store.GetProposal(ctx, id)
	})
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
