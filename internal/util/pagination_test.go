package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_PageLength(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 12, 20, 35} {
		items := seq(total)
		for page := 1; page <= 5; page++ {
			expected := min(QuestionsPerPage, max(0, total-QuestionsPerPage*(page-1)))
			got := Paginate(page, items)
			assert.Lenf(t, got, expected, "total=%d page=%d", total, page)
		}
	}
}

func TestPaginate_Contents(t *testing.T) {
	items := seq(12)

	assert.Equal(t, seq(10), Paginate(1, items))
	assert.Equal(t, []int{11, 12}, Paginate(2, items))
	assert.NotNil(t, Paginate(3, items))
	assert.Empty(t, Paginate(3, items))
}

func TestPaginate_HugePage(t *testing.T) {
	items := seq(12)

	for _, page := range []int{1000000000000000000, math.MaxInt, math.MaxInt / QuestionsPerPage} {
		assert.NotPanics(t, func() {
			got := Paginate(page, items)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		}, "page=%d", page)
	}
	assert.Empty(t, Paginate(1000000000000000000, []int{}))
}

func TestPaginate_InvalidPageFallsBackToFirst(t *testing.T) {
	items := seq(15)

	assert.Equal(t, Paginate(1, items), Paginate(0, items))
	assert.Equal(t, Paginate(1, items), Paginate(-3, items))
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{7, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePage(tt.in))
	}
}
