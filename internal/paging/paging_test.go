package paging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 5, 5},
		{5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.n, tt.size))
		})
	}
}

func TestPaginate_TwentyFiveItems(t *testing.T) {
	items := seq(25)

	page, total := Paginate(items, Spec{Index: 3, Size: 10})
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, page)

	page, total = Paginate(items, Spec{Index: 1, Size: 5})
	assert.Equal(t, 5, total)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, page)
}

func TestPaginate_Clamps(t *testing.T) {
	items := seq(25)

	page, _ := Paginate(items, Spec{Index: 9, Size: 10})
	assert.Equal(t, []int{21, 22, 23, 24, 25}, page)

	page, _ = Paginate(items, Spec{Index: 0, Size: 10})
	assert.Equal(t, seq(10), page)
}

func TestPaginate_Empty(t *testing.T) {
	page, total := Paginate([]int{}, Spec{Index: 1, Size: 10})
	assert.Equal(t, 0, total)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestPaginate_InvalidSize(t *testing.T) {
	page, total := Paginate(seq(3), Spec{Index: 1, Size: 0})
	assert.Nil(t, page)
	assert.Equal(t, 0, total)
}

func TestPaginate_AppendDoesNotClobber(t *testing.T) {
	items := seq(10)
	page, _ := Paginate(items, Spec{Index: 1, Size: 5})
	_ = append(page, 99)
	assert.Equal(t, 6, items[5])
}

func TestSpec_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.ErrorIs(t, Spec{Index: 1, Size: 0}.Validate(), ErrInvalidSize)
	assert.ErrorIs(t, Spec{Index: 0, Size: 5}.Validate(), ErrInvalidIndex)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(1, 3))
	assert.True(t, InRange(3, 3))
	assert.False(t, InRange(4, 3))
	assert.False(t, InRange(0, 3))
	assert.False(t, InRange(1, 0))
}

// Concatenating every page reproduces the input exactly.
func TestProperty_Coverage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "n")
		size := rapid.IntRange(1, 60).Draw(t, "size")
		items := seq(n)

		_, total := Paginate(items, Spec{Index: 1, Size: size})
		if total != TotalPages(n, size) {
			t.Fatalf("total %d, want %d", total, TotalPages(n, size))
		}

		var joined []int
		for i := 1; i <= total; i++ {
			page, _ := Paginate(items, Spec{Index: i, Size: size})
			if len(page) == 0 || len(page) > size {
				t.Fatalf("page %d has %d items (size %d)", i, len(page), size)
			}
			joined = append(joined, page...)
		}
		if len(joined) != n {
			t.Fatalf("pages hold %d items, want %d", len(joined), n)
		}
		for i, v := range joined {
			if v != i+1 {
				t.Fatalf("item %d is %d", i, v)
			}
		}
	})
}
