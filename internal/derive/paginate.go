package derive

// Paginate slices an ordered collection into its 1-indexed page. Pages past
// the end return an empty slice; the input is never mutated. Callers are
// responsible for resetting to page 1 whenever a filter or sort input
// changes.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return []T{}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// TotalPages returns the page count for a collection, never less than one.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
