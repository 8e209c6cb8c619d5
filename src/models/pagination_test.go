package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	params := DefaultPagination()

	t.Run("FirstOfManyPages", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"a", "b"}, 25, params)

		assert.Equal(t, int64(25), resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.False(t, resp.HasPrevious)
	})

	t.Run("MiddlePage", func(t *testing.T) {
		p := params
		p.Page = 2
		resp := NewPaginatedResponse([]string{"a"}, 25, p)

		assert.True(t, resp.HasNext)
		assert.True(t, resp.HasPrevious)
	})

	t.Run("LastPage", func(t *testing.T) {
		p := params
		p.Page = 3
		resp := NewPaginatedResponse([]string{"a"}, 25, p)

		assert.False(t, resp.HasNext)
		assert.True(t, resp.HasPrevious)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{}, 0, params)

		assert.Equal(t, 0, resp.TotalPages)
		assert.False(t, resp.HasNext)
		assert.False(t, resp.HasPrevious)
	})
}

func TestPaginationParamsGetSkip(t *testing.T) {
	params := PaginationParams{Page: 3, Limit: 10}
	assert.Equal(t, int64(20), params.GetSkip())
}

func TestPaginationParamsGetSortOrder(t *testing.T) {
	asc := PaginationParams{SortBy: "name", Order: "asc"}
	assert.Equal(t, map[string]int{"name": 1}, asc.GetSortOrder())

	desc := PaginationParams{SortBy: "createdAt", Order: "desc"}
	assert.Equal(t, map[string]int{"createdAt": -1}, desc.GetSortOrder())
}
