package emoji

import "sort"

// TopRanked returns up to limit glyphs ordered by descending usage count.
// Ties break on the glyph itself so the order is stable across runs.
func TopRanked(ranks map[string]int, limit int) []string {
	if len(ranks) == 0 || limit <= 0 {
		return nil
	}
	type rankedGlyph struct {
		glyph string
		count int
	}
	ordered := make([]rankedGlyph, 0, len(ranks))
	for glyph, count := range ranks {
		ordered = append(ordered, rankedGlyph{glyph: glyph, count: count})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].glyph < ordered[j].glyph
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	out := make([]string, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, r.glyph)
	}
	return out
}

// OrderByUsage moves the most-used glyphs to the front of the list, keeping
// their usage order, and leaves the remainder in its original order. A limit
// of zero or an empty rank table returns the list unchanged.
func OrderByUsage(glyphs []string, ranks map[string]int, limit int) []string {
	if limit <= 0 || len(ranks) == 0 {
		return glyphs
	}
	top := TopRanked(ranks, limit)
	present := make(map[string]struct{}, len(glyphs))
	for _, glyph := range glyphs {
		present[glyph] = struct{}{}
	}
	topSet := make(map[string]struct{}, len(top))
	for _, glyph := range top {
		topSet[glyph] = struct{}{}
	}
	out := make([]string, 0, len(glyphs))
	for _, glyph := range top {
		if _, ok := present[glyph]; ok {
			out = append(out, glyph)
		}
	}
	for _, glyph := range glyphs {
		if _, ok := topSet[glyph]; !ok {
			out = append(out, glyph)
		}
	}
	return out
}
