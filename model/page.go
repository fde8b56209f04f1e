package model

// Page is one page of a paged query. Page indexes are zero based.
type Page[T any] struct {
	Rows           []T   `json:"rows"`
	TotalRowCount  int64 `json:"totalRowCount"`
	TotalPageCount int64 `json:"totalPageCount"`
}

// HasNext reports whether a page after pageIndex exists.
func (p Page[T]) HasNext(pageIndex int) bool {
	return int64(pageIndex)+1 < p.TotalPageCount
}

// SaveResult is the backend's report of a single-entity save.
type SaveResult[E any] struct {
	IsRowAffected         bool           `json:"isRowAffected"`
	TotalAffectedRowCount int            `json:"totalAffectedRowCount"`
	AffectedRowCountMap   map[string]int `json:"affectedRowCountMap"`
	OriginalEntity        E              `json:"originalEntity"`
	ModifiedEntity        E              `json:"modifiedEntity"`
	IsModified            bool           `json:"isModified"`
}
