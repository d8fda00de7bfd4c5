package request

import (
	"net/url"
	"strconv"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// PaginationFromQuery reads the page and per_page query parameters. Absent
// or malformed values fall back to the defaults.
func PaginationFromQuery(query url.Values) *PaginatedRequest {
	return &PaginatedRequest{
		Page:    positiveParam(query.Get("page"), defaultPage),
		PerPage: positiveParam(query.Get("per_page"), defaultPerPage),
	}
}

func positiveParam(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return defaultPerPage
	}
	if p.PerPage > maxPerPage {
		return maxPerPage
	}
	return p.PerPage
}
