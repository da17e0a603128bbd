package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/codebytes2/gamerec/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

func listOptionsFromQuery(q url.Values) (domain.ListOptions, error) {
	options := domain.ListOptions{
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return domain.ListOptions{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return domain.ListOptions{}, fmt.Errorf("invalid page value [%d]", p)
		}
		options.Page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return domain.ListOptions{}, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > maxPageSize {
			return domain.ListOptions{}, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
		}
		if ps < 1 {
			return domain.ListOptions{}, fmt.Errorf("invalid page size value [%d]", ps)
		}
		options.PageSize = int(ps)
	}

	return options, nil
}
