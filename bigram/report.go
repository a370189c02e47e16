package bigram

import (
	"fmt"
	"io"
)

// Stats holds the three summary statistics derived from a ranked sequence.
type Stats struct {
	// Total is the sum of all counts.
	Total int
	// MostCommon lists every key whose count equals the maximum count.
	MostCommon []string
	// TopDecile is the shortest prefix of the ranked sequence whose counts
	// add up to at least 10% of Total.
	TopDecile []string
}

// Compute derives summary statistics from a ranked sequence. The input must
// be sorted by count descending, as returned by Rank.
func Compute(ranked []Entry) Stats {
	var s Stats
	for _, e := range ranked {
		s.Total += e.Count
	}
	if len(ranked) == 0 {
		return s
	}

	max := ranked[0].Count
	for _, e := range ranked {
		if e.Count != max {
			break
		}
		s.MostCommon = append(s.MostCommon, e.Key)
	}

	// Integer form of the running 10% threshold: an entry is included while
	// the cumulative count before it has not yet reached total/10, and the
	// entry that crosses the threshold is included too.
	prefix := 0
	for _, e := range ranked {
		s.TopDecile = append(s.TopDecile, e.Key)
		prefix += e.Count
		if prefix*10 > s.Total {
			break
		}
	}
	return s
}

// Report writes the summary statistics for ranked to w, one section per
// statistic. An empty ranked sequence reports a total of 0 and skips the
// other sections.
func Report(w io.Writer, ranked []Entry) error {
	stats := Compute(ranked)

	if _, err := fmt.Fprintf(w, "the total number of bigrams: %d\n", stats.Total); err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	if len(ranked) == 0 {
		if _, err := fmt.Fprintln(w, "no bigrams in input"); err != nil {
			return fmt.Errorf("writing report: %v", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(w, "the most common bigram:"); err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	for _, key := range stats.MostCommon {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return fmt.Errorf("writing report: %v", err)
		}
	}

	if _, err := fmt.Fprintln(w, "the number of bigrams required to add up to 10% of all bigrams"); err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	for _, key := range stats.TopDecile {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return fmt.Errorf("writing report: %v", err)
		}
	}

	return nil
}
