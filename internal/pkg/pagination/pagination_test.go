package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate_ThirdPageOfTwentyFive(t *testing.T) {
	// Arrange
	items := makeItems(25)

	// Act
	page := Paginate(3, 10, items)

	// Assert: индексы 20..24
	assert.Equal(t, []int{20, 21, 22, 23, 24}, page)
}

func TestPaginate_OutOfRangeIsEmpty(t *testing.T) {
	page := Paginate(4, 10, makeItems(25))

	require.NotNil(t, page)
	assert.Len(t, page, 0, "страница за пределами списка должна быть пустой, без ошибки")
}

func TestPaginate_InvalidArgumentsFallBackToDefaults(t *testing.T) {
	items := makeItems(15)

	assert.Equal(t, items[:10], Paginate(0, 10, items), "page=0 трактуется как первая страница")
	assert.Equal(t, items[:10], Paginate(-3, 10, items), "отрицательная страница трактуется как первая")
	assert.Equal(t, items[:10], Paginate(1, 0, items), "pageSize=0 заменяется на DefaultPageSize")
}

func TestPaginate_ConcatenatedPagesReproducePrefix(t *testing.T) {
	sizes := []int{0, 1, 9, 10, 11, 25, 40, 99}

	for _, n := range sizes {
		items := makeItems(n)
		for k := 1; k <= 11; k++ {
			var collected []int
			for p := 1; p <= k; p++ {
				page := Paginate(p, DefaultPageSize, items)
				assert.LessOrEqual(t, len(page), DefaultPageSize)
				collected = append(collected, page...)
			}

			want := 10 * k
			if want > n {
				want = n
			}
			require.Len(t, collected, want, "n=%d k=%d", n, k)
			for i, v := range collected {
				assert.Equal(t, i, v, "порядок и отсутствие дубликатов, n=%d k=%d", n, k)
			}
		}
	}
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	items := makeItems(25)

	testCases := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"произведение переполняет int", 1844674407370955163, 10},
		{"номер из query-параметра", ParsePage("1844674407370955163"), 10},
		{"максимальный int", math.MaxInt, DefaultPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page := Paginate(tc.page, tc.pageSize, items)

			assert.NotNil(t, page)
			assert.Empty(t, page)
		})
	}
}

func TestPaginate_HugePageSize(t *testing.T) {
	items := makeItems(25)

	assert.Equal(t, items, Paginate(1, math.MaxInt, items))
	assert.Empty(t, Paginate(2, math.MaxInt, items))
}

func TestParsePage(t *testing.T) {
	testCases := []struct {
		raw      string
		expected int
	}{
		{"", 1},
		{"1", 1},
		{"3", 3},
		{"0", 1},
		{"-2", 1},
		{"abc", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParsePage(tc.raw))
		})
	}
}
