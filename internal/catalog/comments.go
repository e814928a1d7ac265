package catalog

import (
	"sort"

	"github.com/2bleO/CoolStff.com/internal/domain"
)

// CommentsFor returns the comments attached to (contentID, contentType),
// newest first. Display order is this function's contract, not the
// store's: whatever order the input arrives in, ties on CreatedAt fall
// back to reversed input order so a comment appended after an equal
// timestamp still displays first. The input slice is never modified.
func CommentsFor(comments []domain.Comment, contentID string, contentType domain.ContentType) []domain.Comment {
	matched := make([]domain.Comment, 0)
	for _, c := range comments {
		if c.ContentID == contentID && c.ContentType == contentType {
			matched = append(matched, c)
		}
	}

	// Reverse first so that equal timestamps keep newest-appended-first
	// order under the subsequent stable sort.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched
}
