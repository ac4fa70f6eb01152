package controller

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type pageRequest struct {
	Page     int
	PageSize int
}

// pageFromQuery reads page and page_size, both starting at one.
func pageFromQuery(q url.Values) (pageRequest, error) {
	p := pageRequest{Page: 1, PageSize: defaultPageSize}

	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			return pageRequest{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if page < 1 {
			return pageRequest{}, fmt.Errorf("invalid page value [%d]", page)
		}
		p.Page = page
	}

	if q.Has("page_size") {
		size, err := strconv.Atoi(q.Get("page_size"))
		if err != nil {
			return pageRequest{}, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if size < 1 || size > maxPageSize {
			return pageRequest{}, fmt.Errorf("page size [%d] outside 1-%d", size, maxPageSize)
		}
		p.PageSize = size
	}

	return p, nil
}

// paginate returns the items on the requested page, empty past the end.
func paginate[T any](items []T, p pageRequest) []T {
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.PageSize, len(items))
	return items[start:end]
}
