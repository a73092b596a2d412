// Package search filters analyzed items client-side. Result sets are
// capped at 100 entries upstream, so re-running the filter on every
// keystroke is cheap enough to skip debouncing.
package search

import (
	"strings"

	"github.com/spacesedan/sentimentscope/internal/models"
)

// Filter returns the items whose text contains query, case-insensitively.
// An empty (or all-whitespace) query returns the input slice unchanged.
// The input is never mutated.
func Filter(items []models.BatchItem, query string) []models.BatchItem {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return items
	}

	var matched []models.BatchItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Text), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}
