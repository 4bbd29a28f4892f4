package validation

// GarbageThresholds tunes the fabricated-input heuristic. The values are not
// derived from any standard; they were chosen against observed keyboard-mash
// input and may need adjusting per deployment.
type GarbageThresholds struct {
	// TiledBlockShare rejects when a repeating block of 2-4 characters,
	// tiled across the string, matches more than this share of positions.
	TiledBlockShare float64
	// DominantCharShare rejects when a single character makes up more than
	// this share of the string.
	DominantCharShare float64
	// MaxMonotonicRun rejects strictly ascending or descending runs (by
	// character code) longer than this.
	MaxMonotonicRun int
	// MinDistinctChars rejects strings of at least MinLengthForDistinct
	// characters with fewer distinct characters than this.
	MinDistinctChars     int
	MinLengthForDistinct int
}

var DefaultGarbageThresholds = GarbageThresholds{
	TiledBlockShare:      0.7,
	DominantCharShare:    0.8,
	MaxMonotonicRun:      6,
	MinDistinctChars:     3,
	MinLengthForDistinct: 8,
}

// SeemsValidDocument reports whether a cleaned alphanumeric string looks like
// a genuine document number rather than obviously fabricated input. It is a
// heuristic filter; false positives and negatives are expected.
func SeemsValidDocument(clean string) bool {
	return DefaultGarbageThresholds.SeemsValid(clean)
}

func (g GarbageThresholds) SeemsValid(clean string) bool {
	if len(clean) < 5 {
		return false
	}

	counts := make(map[byte]int)
	for i := 0; i < len(clean); i++ {
		counts[clean[i]]++
	}

	if len(counts) == 1 {
		return false
	}

	for _, c := range counts {
		if float64(c)/float64(len(clean)) > g.DominantCharShare {
			return false
		}
	}

	for block := 2; block <= 4; block++ {
		// the block must tile at least twice to mean anything
		if 2*block > len(clean) {
			break
		}
		if tiledMatchShare(clean, block) > g.TiledBlockShare {
			return false
		}
	}

	if longestMonotonicRun(clean) > g.MaxMonotonicRun {
		return false
	}

	if len(clean) >= g.MinLengthForDistinct && len(counts) < g.MinDistinctChars {
		return false
	}

	return true
}

// tiledMatchShare tiles the leading block of the given size across the whole
// string and returns the share of positions that match it.
func tiledMatchShare(s string, block int) float64 {
	matches := 0
	for i := 0; i < len(s); i++ {
		if s[i] == s[i%block] {
			matches++
		}
	}
	return float64(matches) / float64(len(s))
}

// longestMonotonicRun returns the length of the longest strictly ascending or
// strictly descending run of character codes.
func longestMonotonicRun(s string) int {
	longest := 1
	asc, desc := 1, 1
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			asc++
		} else {
			asc = 1
		}
		if s[i] < s[i-1] {
			desc++
		} else {
			desc = 1
		}
		if asc > longest {
			longest = asc
		}
		if desc > longest {
			longest = desc
		}
	}
	return longest
}
