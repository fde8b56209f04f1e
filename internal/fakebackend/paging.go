package fakebackend

import (
	"strconv"

	"github.com/jrsteele09/ainote-client/model"
)

const defaultPageSize = 10

// paginate slices rows the way the backend does: zero-based page index,
// missing or invalid parameters fall back to the first page of ten.
func paginate[T any](rows []T, pageIndex, pageSize string) model.Page[T] {
	index, err := strconv.Atoi(pageIndex)
	if err != nil || index < 0 {
		index = 0
	}
	size, err := strconv.Atoi(pageSize)
	if err != nil || size <= 0 {
		size = defaultPageSize
	}

	total := len(rows)
	start := min(index*size, total)
	end := min(start+size, total)
	return model.Page[T]{
		Rows:           rows[start:end],
		TotalRowCount:  int64(total),
		TotalPageCount: int64((total + size - 1) / size),
	}
}
