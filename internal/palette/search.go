package palette

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// SearchResult is a component matched by a query.
type SearchResult struct {
	Component Component

	// Score is the fuzzy match score (higher is better).
	Score int

	// Matches holds the matched byte offsets in Component.Name.
	Matches []int
}

// componentSource adapts a component slice to fuzzy.Source.
type componentSource []Component

func (s componentSource) String(i int) string { return s[i].Name }
func (s componentSource) Len() int            { return len(s) }

// Search fuzzy-matches query against component display names.
// An empty query returns every component, recently used ones first and the
// rest in panel order. A positive limit caps the result count.
func (p *Palette) Search(query string, limit int) []SearchResult {
	var results []SearchResult

	if query == "" {
		results = make([]SearchResult, 0, len(p.components))
		for _, c := range p.components {
			results = append(results, SearchResult{Component: c})
		}
		sort.SliceStable(results, func(i, j int) bool {
			pi := p.recent.Position(results[i].Component.Type)
			pj := p.recent.Position(results[j].Component.Type)
			switch {
			case pi >= 0 && pj >= 0:
				return pi < pj
			default:
				return pi >= 0 && pj < 0
			}
		})
	} else {
		for _, m := range fuzzy.FindFrom(query, componentSource(p.components)) {
			results = append(results, SearchResult{
				Component: p.components[m.Index],
				Score:     m.Score,
				Matches:   m.MatchedIndexes,
			})
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Group returns the components of each category in panel order, keeping
// only names that fuzzy-match query. Empty categories are omitted.
func (p *Palette) Group(query string) map[Category][]Component {
	out := make(map[Category][]Component)
	if query == "" {
		for _, c := range p.components {
			out[c.Category] = append(out[c.Category], c)
		}
		return out
	}

	matched := make(map[int]bool)
	for _, m := range fuzzy.FindFrom(query, componentSource(p.components)) {
		matched[m.Index] = true
	}
	for i, c := range p.components {
		if matched[i] {
			out[c.Category] = append(out[c.Category], c)
		}
	}
	return out
}
