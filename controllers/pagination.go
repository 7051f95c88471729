package controllers

import (
	"net/url"
	"strconv"
)

// Pagination carries the 1-based page and the clamped page size parsed from
// a request's query string.
type Pagination struct {
	Page  int64
	Limit int64
}

// maxPage keeps Skip() far from int64 overflow even at the largest limit;
// a past-the-end page still just yields an empty slice.
const maxPage = 1 << 31

func parsePagination(query url.Values, defaultLimit, maxLimit int64) Pagination {
	p := Pagination{Page: 1, Limit: defaultLimit}

	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.ParseInt(raw, 10, 64); err == nil && page > 0 {
			p.Page = page
		}
	}

	if p.Page > maxPage {
		p.Page = maxPage
	}

	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil && limit > 0 {
			p.Limit = limit
		}
	}

	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	return p
}

func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes the page count for a matching-document total.
// 12 documents at limit 5 paginate into 3 pages.
func (p Pagination) TotalPages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return pages
}
