package helpers

import (
	"errors"
	"net/http"
	"strconv"

	"donationrecords/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Both absent
// yields the zero value, meaning no limit. When only page_size is given page defaults
// to 1; page without page_size uses DefaultPageSize. page_size is clamped to MaxPageSize.
func ParsePagination(r *http.Request) (domain.PaginationParams, error) {
	q := r.URL.Query()
	pageStr, sizeStr := q.Get("page"), q.Get("page_size")
	if pageStr == "" && sizeStr == "" {
		return domain.PaginationParams{}, nil
	}
	page := 1
	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil || v < 1 {
			return domain.PaginationParams{}, errors.New("page must be a positive integer")
		}
		page = v
	}
	pageSize := DefaultPageSize
	if sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v < 1 {
			return domain.PaginationParams{}, errors.New("page_size must be a positive integer")
		}
		pageSize = min(v, MaxPageSize)
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}, nil
}
