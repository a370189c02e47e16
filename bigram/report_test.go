package bigram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		table      Table
		total      int
		mostCommon []string
		topDecile  []string
	}{
		{
			name:       "single dominant bigram",
			table:      Table{"the cat": 5, "cat sat": 3, "sat mat": 3},
			total:      11,
			mostCommon: []string{"the cat"},
			// threshold is 1.1, the first entry alone crosses it
			topDecile: []string{"the cat"},
		},
		{
			name:       "uniform counts",
			table:      Table{"a b": 1, "c d": 1, "e f": 1, "g h": 1, "i j": 1},
			total:      5,
			mostCommon: []string{"a b", "c d", "e f", "g h", "i j"},
			topDecile:  []string{"a b"},
		},
		{
			name:       "single entry",
			table:      Table{"a b": 7},
			total:      7,
			mostCommon: []string{"a b"},
			topDecile:  []string{"a b"},
		},
		{
			name: "threshold needs several entries",
			table: Table{"a b": 2, "c d": 2, "e f": 2, "g h": 2, "i j": 2, "k l": 2,
				"m n": 2, "o p": 2, "q r": 2, "s t": 2, "u v": 2},
			total: 22,
			mostCommon: []string{"a b", "c d", "e f", "g h", "i j", "k l",
				"m n", "o p", "q r", "s t", "u v"},
			// threshold is 2.2, ties rank by key, so the first two entries land
			topDecile: []string{"a b", "c d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Compute(Rank(tt.table))

			assert.Equal(t, tt.total, stats.Total)
			assert.ElementsMatch(t, tt.mostCommon, stats.MostCommon)
			assert.Equal(t, tt.topDecile, stats.TopDecile)
		})
	}
}

func TestComputeMostCommonTies(t *testing.T) {
	stats := Compute(Rank(Table{"a b": 5, "c d": 5, "e f": 2}))

	// tied maxima are all reported; order is not part of the contract
	assert.ElementsMatch(t, []string{"a b", "c d"}, stats.MostCommon)
}

func TestComputeDecilePrefix(t *testing.T) {
	// total 100, threshold 10: counts 4+4 = 8 < 10, third entry crosses
	table := Table{"a b": 4, "c d": 4, "e f": 4, "g h": 88}
	stats := Compute(Rank(table))

	require.Equal(t, 100, stats.Total)
	assert.Equal(t, []string{"g h"}, stats.TopDecile)

	// smallest prefix sum >= 10% of total, stop inclusive
	sum := 0
	ranked := Rank(table)
	for i, key := range stats.TopDecile {
		require.Equal(t, ranked[i].Key, key)
		sum += ranked[i].Count
	}
	assert.GreaterOrEqual(t, sum*10, stats.Total)
}

func TestComputeDecileExactBoundary(t *testing.T) {
	// prefix*10 == total keeps the loop going: 1 of 10 is exactly 10%,
	// so a second entry is still emitted before stopping
	stats := Compute(Rank(Table{"a b": 1, "c d": 1, "e f": 1, "g h": 1, "i j": 1,
		"k l": 1, "m n": 1, "o p": 1, "q r": 1, "s t": 1}))

	require.Equal(t, 10, stats.Total)
	assert.Len(t, stats.TopDecile, 2)
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.MostCommon)
	assert.Empty(t, stats.TopDecile)
}

func TestReport(t *testing.T) {
	table := Table{}
	require.NoError(t, Load(strings.NewReader("the cat 5\ncat sat 3\nsat mat 3\n"), table, Overwrite))

	var out strings.Builder
	require.NoError(t, Report(&out, Rank(table)))

	expected := "the total number of bigrams: 11\n" +
		"the most common bigram:\n" +
		"the cat\n" +
		"the number of bigrams required to add up to 10% of all bigrams\n" +
		"the cat\n"
	assert.Equal(t, expected, out.String())
}

func TestReportEmpty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Report(&out, nil))

	expected := "the total number of bigrams: 0\n" +
		"no bigrams in input\n"
	assert.Equal(t, expected, out.String())
}

func TestReportIdempotent(t *testing.T) {
	input := "a b 3\nc d 2\ne f 2\ng h 1\n"

	render := func() string {
		table := Table{}
		require.NoError(t, Load(strings.NewReader(input), table, Overwrite))
		var out strings.Builder
		require.NoError(t, Report(&out, Rank(table)))
		return out.String()
	}

	first := render()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render())
	}
}
