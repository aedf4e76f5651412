package listing

// Page is one page of a list result.
type Page[T any] struct {
	Data        []T   `json:"data" msgpack:"data"`
	Page        int   `json:"page" msgpack:"page"`
	TotalPages  int   `json:"totalPages" msgpack:"totalPages"`
	HasNextPage bool  `json:"hasNextPage" msgpack:"hasNextPage"`
	Total       int64 `json:"-" msgpack:"total"`
}

// Paginate computes page metadata from the total row count.
func Paginate[T any](rows []T, total int64, page, perPage int) Page[T] {
	if rows == nil {
		rows = []T{}
	}

	totalPages := 0
	if perPage > 0 && total > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return Page[T]{
		Data:        rows,
		Page:        page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		Total:       total,
	}
}
