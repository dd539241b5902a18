package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ParsePaginationParams reads page/per_page, applying defaults and the cap.
func ParsePaginationParams(values url.Values) (page int, perPage int) {
	page = 1
	perPage = DefaultPerPage

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if ppStr := values.Get("per_page"); ppStr != "" {
		if pp, err := strconv.Atoi(ppStr); err == nil && pp > 0 {
			if pp > MaxPerPage {
				perPage = MaxPerPage
			} else {
				perPage = pp
			}
		}
	}

	return page, perPage
}

func TotalPages(totalCount int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalCount) / perPage
	if int(totalCount)%perPage != 0 {
		pages++
	}
	return pages
}

func NewPaginationMeta(page, perPage int, totalCount int64) PaginationMeta {
	return PaginationMeta{
		CurrentPage: page,
		PerPage:     perPage,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, perPage),
	}
}
