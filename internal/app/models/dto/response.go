package dto

import "time"

// APIResponse is the standard success envelope for rendered-page data
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Notice    string       `json:"notice,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// PaginationInfo describes one page of a listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
