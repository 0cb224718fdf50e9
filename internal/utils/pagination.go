package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/constants"
)

// PaginationParams holds the pagination parameters extracted from a request.
type PaginationParams struct {
	Page         int
	ItemsPerPage int
}

// GetPaginationParams extracts and clamps pagination parameters. Pages are
// 1-based; out-of-range values fall back to the defaults.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	itemsPerPage, _ := strconv.Atoi(c.DefaultQuery("items_per_page", strconv.Itoa(constants.DefaultPageSize)))

	if page < constants.MinPage {
		page = constants.MinPage
	}
	if itemsPerPage < 1 || itemsPerPage > constants.MaxPageSize {
		itemsPerPage = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:         page,
		ItemsPerPage: itemsPerPage,
	}
}

// TotalPages computes ceil(total / itemsPerPage).
func TotalPages(total int64, itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(itemsPerPage)))
}
