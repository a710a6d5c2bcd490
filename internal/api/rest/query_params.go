package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/namada-indexer/internal/domain"
)

const (
	DEFAULT_PAGE_SIZE = 20
	MAX_PAGE_SIZE     = 100
)

// PaginationQueryParams holds the limit/offset query parameters
type PaginationQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// IsFirstPage reports whether the request asks for the default first page
func (p PaginationQueryParams) IsFirstPage() bool {
	return p.Offset == 0 && p.Limit == DEFAULT_PAGE_SIZE
}

// ListProposalsQueryParams holds query parameters for GET /gov/proposals
type ListProposalsQueryParams struct {
	PaginationQueryParams
	Status string `form:"status"`
}

// ListValidatorsQueryParams holds query parameters for GET /pos/validators
type ListValidatorsQueryParams struct {
	State string `form:"state"`
}

// ParsePaginationQuery parses and normalizes limit/offset
func ParsePaginationQuery(c *gin.Context) (*PaginationQueryParams, error) {
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseListProposalsQuery parses query parameters for GET /gov/proposals
func ParseListProposalsQuery(c *gin.Context) (*ListProposalsQueryParams, error) {
	var params ListProposalsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}

	switch params.Status {
	case "",
		domain.PROPOSAL_STATUS_PENDING,
		domain.PROPOSAL_STATUS_VOTING,
		domain.PROPOSAL_STATUS_PASSED,
		domain.PROPOSAL_STATUS_REJECTED,
		domain.PROPOSAL_STATUS_EXECUTED:
	default:
		return nil, fmt.Errorf("unknown proposal status: %q", params.Status)
	}

	return &params, nil
}

func (p *PaginationQueryParams) normalize() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be positive")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}

	// Cap limit
	if p.Limit > MAX_PAGE_SIZE {
		p.Limit = MAX_PAGE_SIZE
	}
	return nil
}

// parseUintParam parses a numeric path parameter
func parseUintParam(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}
