package util

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// NormalizePage maps a requested page number to a valid 1-based page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate returns the page-th slice of items, QuestionsPerPage at a time.
// Pages past the end yield an empty, non-nil slice.
func Paginate[T any](page int, items []T) []T {
	page = NormalizePage(page)
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	// Compare page numbers before multiplying so huge pages cannot overflow.
	if page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
