package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseListQuery safely parses and validates prefix and limit query parameters
// for list endpoints. The prefix defaults to "" (no filtering) and the limit
// defaults to 50. The limit cannot exceed 100.
func ParseListQuery(c *gin.Context) (prefix string, limit int, err error) {
	prefix = c.Query("prefix")

	// Parse limit query parameter (default: 50, max: 100)
	limitStr := c.DefaultQuery("limit", "50")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		return "", 0, fmt.Errorf("invalid limit parameter: must be between 1 and 100")
	}

	return prefix, limit, nil
}
