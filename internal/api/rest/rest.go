package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		chain := v1.Group("/chain")
		chain.GET("/blocks/latest", handler.GetLatestBlock)
		chain.GET("/blocks/:height", handler.GetBlock)
		chain.GET("/blocks/:height/transactions", handler.GetBlockTransactions)
		chain.GET("/parameters", handler.GetParameters)
		chain.GET("/balances/:address", handler.GetBalances)
		chain.GET("/validators", handler.ListValidators)

		gov := v1.Group("/gov")
		gov.GET("/proposals", handler.ListProposals)
		gov.GET("/proposals/active", handler.GetActiveProposals)
		gov.GET("/proposals/:id", handler.GetProposal)
		gov.GET("/proposals/:id/votes", handler.GetProposalVotes)

		pos := v1.Group("/pos")
		pos.GET("/validators", handler.ListValidators)
		pos.GET("/bonds/:address", handler.GetBonds)
		pos.GET("/rewards/:address", handler.GetRewardClaims)
		pos.GET("/inflation/:epoch", handler.GetInflationRewards)

		v1.GET("/transactions/:hash", handler.GetTransaction)
		v1.GET("/crawlers", handler.ListCrawlers)
	}

	router.NoRoute(NotFound)
}
