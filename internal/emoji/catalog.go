// Package emoji holds the searchable emoji catalog: entries loaded from a
// gemoji-style JSON dataset, the keyword lists derived from them, and an
// inverted prefix index used to answer queries.
package emoji

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	_ "embed"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	minQueryRunes   = 2
	minKeywordRunes = 2
	maxPrefixRunes  = 24
	maxResults      = 2000
)

//go:embed emoji.json
var embeddedData []byte

// Entry is one emoji record in the dataset.
type Entry struct {
	Emoji          string   `json:"emoji"`
	Description    string   `json:"description"`
	Category       string   `json:"category,omitempty"`
	Aliases        []string `json:"aliases,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	UnicodeVersion string   `json:"unicode_version,omitempty"`
	IOSVersion     string   `json:"ios_version,omitempty"`
}

// Catalog is an immutable emoji dataset with its search structures built.
type Catalog struct {
	entries      []Entry
	keywords     map[string][]string
	index        map[string][]int
	flatKeywords []string
	flatOwners   []int
}

// Load reads the dataset from path, falling back to the embedded copy when
// path is empty or unreadable.
func Load(path string) (*Catalog, error) {
	content := embeddedData
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			content = data
		}
	}
	var entries []Entry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("parse emoji dataset: %w", err)
	}
	return New(entries), nil
}

// New builds a catalog from the supplied entries.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries:  entries,
		keywords: make(map[string][]string, len(entries)),
		index:    make(map[string][]int),
	}
	for _, entry := range entries {
		c.keywords[entry.Emoji] = buildKeywords(entry)
	}
	for idx, entry := range entries {
		keywords := c.keywords[entry.Emoji]
		for _, keyword := range keywords {
			indexKeyword(c.index, keyword, idx)
			words := strings.Fields(strings.ReplaceAll(keyword, "-", " "))
			if len(words) > 1 {
				for _, word := range words {
					indexKeyword(c.index, word, idx)
				}
			}
			c.flatKeywords = append(c.flatKeywords, keyword)
			c.flatOwners = append(c.flatOwners, idx)
		}
	}
	for key, postings := range c.index {
		sort.Ints(postings)
		c.index[key] = dedupInts(postings)
	}
	return c
}

// Len reports the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Keywords returns the keyword list for a glyph, description first. The
// result is empty for glyphs outside the catalog.
func (c *Catalog) Keywords(glyph string) []string {
	keywords, ok := c.keywords[glyph]
	if !ok {
		return nil
	}
	return append([]string(nil), keywords...)
}

// Search resolves a query to a list of glyphs. A glyph typed directly (with
// or without the VS16 presentation selector) matches itself so its usage
// count can be boosted. Queries shorter than two runes return the full
// catalog; otherwise the prefix index answers, with a fuzzy pass over the
// keyword lists when the index has no entry. Results are capped at 2000.
func (c *Catalog) Search(query string) []string {
	trimmed := strings.TrimSpace(query)
	if _, ok := c.keywords[trimmed]; ok {
		return []string{trimmed}
	}
	if stripped := stripVariationSelector(trimmed); stripped != trimmed {
		if _, ok := c.keywords[stripped]; ok {
			return []string{stripped}
		}
	}
	lowered := strings.ToLower(trimmed)
	if len([]rune(lowered)) < minQueryRunes {
		return c.allGlyphs()
	}
	if postings, ok := c.index[lowered]; ok {
		out := make([]string, 0, len(postings))
		for _, idx := range postings {
			if len(out) == maxResults {
				break
			}
			out = append(out, c.entries[idx].Emoji)
		}
		return out
	}
	return c.fuzzyGlyphs(lowered)
}

func (c *Catalog) allGlyphs() []string {
	limit := len(c.entries)
	if limit > maxResults {
		limit = maxResults
	}
	out := make([]string, 0, limit)
	for _, entry := range c.entries[:limit] {
		out = append(out, entry.Emoji)
	}
	return out
}

func (c *Catalog) fuzzyGlyphs(query string) []string {
	ranks := fuzzy.RankFindNormalizedFold(query, c.flatKeywords)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})
	seen := make(map[int]struct{}, len(ranks))
	out := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		owner := c.flatOwners[rank.OriginalIndex]
		if _, ok := seen[owner]; ok {
			continue
		}
		seen[owner] = struct{}{}
		out = append(out, c.entries[owner].Emoji)
		if len(out) == maxResults {
			break
		}
	}
	return out
}

// buildKeywords assembles a glyph's keyword list: normalized description
// first, then aliases and tags sorted by length with duplicates removed.
func buildKeywords(entry Entry) []string {
	description := strings.ReplaceAll(strings.ToLower(entry.Description), "_", " ")
	rest := make([]string, 0, len(entry.Aliases)+len(entry.Tags))
	for _, keyword := range entry.Aliases {
		rest = append(rest, strings.ReplaceAll(strings.ToLower(keyword), "_", " "))
	}
	for _, keyword := range entry.Tags {
		rest = append(rest, strings.ReplaceAll(strings.ToLower(keyword), "_", " "))
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return len(rest[i]) < len(rest[j])
	})
	keywords := []string{description}
	seen := map[string]struct{}{description: {}}
	for _, keyword := range rest {
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		keywords = append(keywords, keyword)
	}
	return keywords
}

// indexKeyword records a keyword and its prefixes (down to two runes) for
// one entry. Posting lists are deduplicated after the full build.
func indexKeyword(index map[string][]int, keyword string, entry int) {
	runes := []rune(keyword)
	if len(runes) < minKeywordRunes {
		return
	}
	index[keyword] = append(index[keyword], entry)
	longest := len(runes)
	if longest > maxPrefixRunes {
		longest = maxPrefixRunes
	}
	for i := minKeywordRunes; i <= longest; i++ {
		prefix := string(runes[:i])
		index[prefix] = append(index[prefix], entry)
	}
}

func dedupInts(values []int) []int {
	out := values[:0]
	for i, v := range values {
		if i > 0 && values[i-1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}

// stripVariationSelector removes the U+FE0F presentation selector so glyphs
// typed with either presentation resolve to the same entry.
func stripVariationSelector(s string) string {
	return strings.ReplaceAll(s, "️", "")
}
