// Package bigram aggregates bigram-count records and ranks them by frequency.
package bigram

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type (
	// Table maps a bigram key ("word1 word2") to its count.
	Table map[string]int

	// Policy decides what happens when the same bigram key is seen twice.
	Policy int
)

const (
	// Overwrite keeps only the last count seen for a key. This matches the
	// behavior of the original count job.
	Overwrite Policy = iota
	// Sum accumulates counts for repeated keys.
	Sum
)

// Add stores count under key, resolving a duplicate key according to p.
func (t Table) Add(key string, count int, p Policy) {
	if p == Sum {
		t[key] += count
	} else {
		t[key] = count
	}
}

// Load reads whitespace-delimited "<word1> <word2> <count>" records from r
// into t. Extra tokens after the count are ignored. A line with fewer than 3
// tokens or a non-integer count aborts the load; t may hold a partial result
// at that point and should be discarded.
func Load(r io.Reader, t Table, p Policy) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			return fmt.Errorf("line %d: expected at least 3 fields, got %d", lineNo, len(fields))
		}
		count, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("line %d: parsing count: %v", lineNo, err)
		}
		t.Add(fields[0]+" "+fields[1], count, p)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %v", err)
	}
	return nil
}
