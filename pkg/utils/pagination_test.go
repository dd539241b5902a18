package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, perPage := ParsePaginationParams(url.Values{})
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPerPage, perPage)
}

func TestParsePaginationParams(t *testing.T) {
	values := url.Values{"page": {"3"}, "per_page": {"50"}}
	page, perPage := ParsePaginationParams(values)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, perPage)
}

func TestParsePaginationParamsInvalidValues(t *testing.T) {
	values := url.Values{"page": {"0"}, "per_page": {"abc"}}
	page, perPage := ParsePaginationParams(values)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPerPage, perPage)

	values = url.Values{"page": {"-2"}, "per_page": {"-5"}}
	page, perPage = ParsePaginationParams(values)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPerPage, perPage)
}

func TestParsePaginationParamsCap(t *testing.T) {
	values := url.Values{"per_page": {"500"}}
	_, perPage := ParsePaginationParams(values)
	assert.Equal(t, MaxPerPage, perPage)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(2, 20, 41)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 20, meta.PerPage)
	assert.Equal(t, int64(41), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
}
