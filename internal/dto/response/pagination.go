package response

import "vertex-leisure/internal/dto/request"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginatedResponse wraps one page of rows with the metadata a client
// needs to walk the rest.
func NewPaginatedResponse[T any](data []T, req *request.PaginatedRequest, total int64) *PaginatedResponse[T] {
	perPage := req.Limit()
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Page:       req.Page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
