package tagging

import (
	"iter"
	"slices"
	"strings"
)

// FilterSuggestions returns the pool entries that are not already tags and
// that contain query case-insensitively, in pool order.
func (e *Engine) FilterSuggestions(pool []string, query string) []string {
	return slices.Collect(filterPool(pool, e.TagList(), query))
}

// Suggestions yields candidates from the configured pool for query. The
// sequence is lazy and can be ranged over more than once; each range sees
// the tag list as it is at that moment. It is empty when autocomplete is off.
func (e *Engine) Suggestions(query string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !e.autocomplete {
			return
		}
		for s := range filterPool(e.pool, e.TagList(), query) {
			if !yield(s) {
				return
			}
		}
	}
}

// AutocompleteEnabled reports whether the engine offers suggestions.
func (e *Engine) AutocompleteEnabled() bool { return e.autocomplete }

// Pool returns a copy of the configured suggestion pool.
func (e *Engine) Pool() []string { return slices.Clone(e.pool) }

func filterPool(pool, used []string, query string) iter.Seq[string] {
	needle := strings.ToLower(query)
	return func(yield func(string) bool) {
		for _, candidate := range pool {
			if slices.Contains(used, candidate) {
				continue
			}
			if !strings.Contains(strings.ToLower(candidate), needle) {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}
