package recommend

import "dramarec/internal/catalog"

// TopRated returns the one-indexed page of records ordered by rating,
// highest first, with equal ratings kept in catalog order. Pages outside the
// catalog and non-positive arguments yield an empty slice.
func (e *Engine) TopRated(page, perPage int) []catalog.Record {
	if page < 1 || perPage < 1 {
		return []catalog.Record{}
	}
	// Compare in page units so (page-1)*perPage cannot overflow.
	if len(e.ranked) == 0 || page-1 > (len(e.ranked)-1)/perPage {
		return []catalog.Record{}
	}
	start := (page - 1) * perPage
	end := start + min(perPage, len(e.ranked)-start)

	out := make([]catalog.Record, 0, end-start)
	for _, idx := range e.ranked[start:end] {
		out = append(out, e.records[idx])
	}
	return out
}

// PageCount returns the number of non-empty pages of size perPage.
func (e *Engine) PageCount(perPage int) int {
	if perPage < 1 || len(e.ranked) == 0 {
		return 0
	}
	return (len(e.ranked)-1)/perPage + 1
}
