package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skilltrack/skilltrack/internal/app/models/dto"
)

const (
	// PageSize is the fixed number of students per listing page.
	PageSize    = 10
	DefaultPage = 1 // page numbers are 1-based
)

// ParsePageParam extracts the 1-based page number from the request.
// Invalid or missing values fall back to page 1.
func ParsePageParam(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based
// on a 1-based page index.
func CalculateOffsetLimit(page int) (offset uint64, limit int) {
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * PageSize), PageSize
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number. Pages past the end of the data are
// allowed; they simply carry no items.
func NewPaginationInfo(totalItems int64, page int) dto.PaginationInfo {
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(PageSize)))
	} else if page == 1 {
		totalPages = 1
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    PageSize,
		TotalItems:  totalItems,
	}
}
