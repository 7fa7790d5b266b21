package browser

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/datatug/tviewx/pkg/files"
)

// sortEntries orders a listing directories first, then by case-folded
// name. A single three-way comparator keeps the ordering a strict weak
// order; composing separate directory/name predicates would not.
func sortEntries(entries []files.Entry) {
	fold := cases.Fold()
	slices.SortFunc(entries, func(a, b files.Entry) int {
		return compareEntries(fold, a, b)
	})
}

func compareEntries(fold cases.Caser, a, b files.Entry) int {
	if aDir, bDir := a.IsDir(), b.IsDir(); aDir != bDir {
		if aDir {
			return -1
		}
		return 1
	}
	if c := strings.Compare(fold.String(a.Name()), fold.String(b.Name())); c != 0 {
		return c
	}
	// Names equal under folding, e.g. "Makefile" vs "makefile".
	return strings.Compare(a.Name(), b.Name())
}
