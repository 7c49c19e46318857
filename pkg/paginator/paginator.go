package paginator

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page is the envelope every paginated listing returns.
type Page[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Pages   int `json:"pages"`
}

func NewPage[T any](items []T, total, page, perPage int) Page[T] {
	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
	}
}

// Clamp normalizes page/per_page query values into usable bounds.
func Clamp(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Offset is the row offset for the given page.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
