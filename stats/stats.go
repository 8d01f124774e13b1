package stats

import (
	"fmt"
	"sort"
)

// Summary counts the outcomes of one filter run over an archive.
type Summary struct {
	Conversations      int
	Scanned            int
	SkippedSender      int
	SkippedEmpty       int
	Matched            int
	TimestampFallbacks int
}

// LogAttrs flattens the summary into slog key/value pairs.
func (s Summary) LogAttrs() []any {
	return []any{
		"conversations", s.Conversations,
		"scanned", s.Scanned,
		"skippedSender", s.SkippedSender,
		"skippedEmpty", s.SkippedEmpty,
		"matched", s.Matched,
		"timestampFallbacks", s.TimestampFallbacks,
	}
}

// PrettyPrintTop prints the top N most frequent items in a map.
func PrettyPrintTop(m map[string]int, limit int) {
	type pair struct {
		Key   string
		Value int
	}

	var pairs []pair
	for k, v := range m {
		pairs = append(pairs, pair{k, v})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})

	for i := 0; i < limit && i < len(pairs); i++ {
		fmt.Printf("%d. %s (%d)\n", i+1, pairs[i].Key, pairs[i].Value)
	}
}
