package domain

// Page is the uniform envelope returned by every paginated query.
// PageNumber is the 1-based client page echoed back after normalization,
// never the storage layer's 0-based index. Total reflects all matching
// records regardless of the page window.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewPage assembles a paginated envelope. A nil items slice is normalized
// to an empty one so the JSON data field is always an array.
func NewPage[T any](items []T, total int64, page, limit int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	}
}
