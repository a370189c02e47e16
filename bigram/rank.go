package bigram

import "sort"

// Entry is one record of the ranked sequence.
type Entry struct {
	Key   string
	Count int
}

// Rank returns the table's entries sorted by count descending. Tie order is
// not part of the contract; ties are broken by key so repeated runs on the
// same input produce identical output.
func Rank(t Table) []Entry {
	ranked := make([]Entry, 0, len(t))
	for k, v := range t {
		ranked = append(ranked, Entry{Key: k, Count: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})
	return ranked
}
