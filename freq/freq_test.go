package freq_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/periodicity/freq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCountString_Empty verifies that an empty string yields an empty table.
func TestCountString_Empty(t *testing.T) {
	tbl := freq.CountString("")
	require.NotNil(t, tbl, "table must be allocated even for empty input")
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 0, tbl.Total())
	assert.Empty(t, tbl.Counts())
}

// TestCountString_Basic checks counts on the header example "addaadda".
func TestCountString_Basic(t *testing.T) {
	tbl := freq.CountString("addaadda")
	assert.Equal(t, freq.Table[byte]{'a': 4, 'd': 4}, tbl)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 8, tbl.Total(), "total must equal input length")
}

// TestCountString_ByteWise ensures multi-byte runes are counted per byte.
func TestCountString_ByteWise(t *testing.T) {
	s := "éé" // 0xC3 0xA9 twice
	tbl := freq.CountString(s)
	assert.Equal(t, freq.Table[byte]{0xC3: 2, 0xA9: 2}, tbl)
	assert.Equal(t, len(s), tbl.Total())
}

// TestCount_Generic verifies counting over non-byte symbol types.
func TestCount_Generic(t *testing.T) {
	tbl := freq.Count([]int{3, 1, 3, 3, 7})
	assert.Equal(t, freq.Table[int]{3: 3, 1: 1, 7: 1}, tbl)

	counts := tbl.Counts()
	sort.Ints(counts)
	assert.Equal(t, []int{1, 1, 3}, counts)
}

// TestCount_Nil verifies a nil slice behaves like an empty one.
func TestCount_Nil(t *testing.T) {
	var seq []string
	tbl := freq.Count(seq)
	require.NotNil(t, tbl)
	assert.Equal(t, 0, tbl.Total())
}

// TestCount_TotalInvariant checks sum(counts) == len(seq) over several inputs.
func TestCount_TotalInvariant(t *testing.T) {
	for _, s := range []string{"a", "abc", "aaabbbaaabbb", "mississippi", "zzzzzzzzzz"} {
		tbl := freq.CountString(s)
		sum := 0
		for _, c := range tbl.Counts() {
			assert.Positive(t, c, "every stored count must be positive (%q)", s)
			sum += c
		}
		assert.Equal(t, len(s), sum, "counts must sum to length (%q)", s)
		assert.LessOrEqual(t, tbl.Len(), len(s))
	}
}
