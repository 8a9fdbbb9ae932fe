package navigation

// SelfHeal restores the trail invariants and returns a new slice.
//
// A trail longer than HealThreshold is cut to its last MaxEntries entries, then
// consecutive entries with the same location collapse into the first one, keeping
// its label. Running it twice yields the same result as running it once.
func SelfHeal(entries []Entry) []Entry {
	src := entries
	if len(src) > HealThreshold {
		src = src[len(src)-MaxEntries:]
	}

	out := make([]Entry, 0, len(src))
	for _, entry := range src {
		if n := len(out); n > 0 && out[n-1].Same(entry) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// lastN returns a copy of the trailing n entries.
func lastN(entries []Entry, n int) []Entry {
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
