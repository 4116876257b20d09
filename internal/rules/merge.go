package rules

import (
	"sort"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// MergeOverlapping coalesces overlapping or touching issues that carry the
// identical message into single reportable spans. One real-world violation is
// often matched by several nested sub-patterns; merging by message avoids
// duplicate reporting while keeping distinct violations that merely touch.
func MergeOverlapping(issues []model.Issue) []model.Issue {
	if len(issues) <= 1 {
		return issues
	}

	sorted := make([]model.Issue, len(issues))
	copy(sorted, issues)
	// Start ascending, longer span first on ties.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	merged := []model.Issue{sorted[0]}
	for _, next := range sorted[1:] {
		cur := &merged[len(merged)-1]
		if next.Start <= cur.End && next.Message == cur.Message {
			if next.End > cur.End {
				cur.End = next.End
				cur.Excerpt = cur.Excerpt + " / " + next.Excerpt
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}
