package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{1, 10, 1, 10},
		{2, 50, 2, 50},
		{1, 500, 1, 100},
	}
	for _, tt := range tests {
		page, size := ClampPage(tt.page, tt.size)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantSize, size)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	res := Paginate(items, 2, 10)
	assert.Equal(t, 25, res.TotalItems)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 11, res.Data[0])
	assert.Len(t, res.Data, 10)

	last := Paginate(items, 3, 10)
	assert.Len(t, last.Data, 5)

	past := Paginate(items, 9, 10)
	assert.Empty(t, past.Data)
	assert.Equal(t, 25, past.TotalItems)
}

func TestPaginateEmptyCollection(t *testing.T) {
	res := Paginate([]int{}, 1, 10)
	assert.NotNil(t, res.Data)
	assert.Equal(t, 0, res.TotalItems)
	assert.Equal(t, 0, res.TotalPages)
}
