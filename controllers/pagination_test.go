package controllers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationDefaults(t *testing.T) {
	p := parsePagination(url.Values{}, 10, 100)
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
	assert.Equal(t, int64(0), p.Skip())
}

func TestParsePaginationExplicit(t *testing.T) {
	q := url.Values{"page": {"2"}, "limit": {"5"}}
	p := parsePagination(q, 10, 100)
	assert.Equal(t, int64(2), p.Page)
	assert.Equal(t, int64(5), p.Limit)
	assert.Equal(t, int64(5), p.Skip())
}

func TestParsePaginationClampsLimit(t *testing.T) {
	q := url.Values{"limit": {"5000"}}
	p := parsePagination(q, 10, 100)
	assert.Equal(t, int64(100), p.Limit)
}

func TestParsePaginationIgnoresGarbage(t *testing.T) {
	q := url.Values{"page": {"abc"}, "limit": {"-3"}}
	p := parsePagination(q, 10, 100)
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
}

func TestParsePaginationClampsPage(t *testing.T) {
	q := url.Values{"page": {"9223372036854775807"}, "limit": {"100"}}
	p := parsePagination(q, 10, 100)
	assert.Equal(t, int64(1<<31), p.Page)
	assert.GreaterOrEqual(t, p.Skip(), int64(0))
}

func TestTotalPages(t *testing.T) {
	p := Pagination{Page: 2, Limit: 5}
	assert.Equal(t, int64(3), p.TotalPages(12))
	assert.Equal(t, int64(2), p.TotalPages(10))
	assert.Equal(t, int64(1), p.TotalPages(1))
	assert.Equal(t, int64(0), p.TotalPages(0))
}
