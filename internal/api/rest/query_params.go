package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-journal/internal/api/shared/constants"
)

// PageQueryParams holds the paging query parameters of list endpoints
type PageQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParsePageQuery parses paging query parameters
func ParsePageQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	return &params, nil
}

// Validate validates the paging parameters
func (p *PageQueryParams) Validate() error {
	if p.Limit < 1 || p.Limit > constants.MAX_PAGE_SIZE {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}

	return nil
}
