package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseSkipLimit reads offset pagination from the query string, defaulting
// to skip=0 limit=100. Negative or non-numeric values fall back to the
// defaults rather than failing the request.
func parseSkipLimit(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}
	return skip, limit
}
