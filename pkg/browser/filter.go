package browser

import "github.com/datatug/tviewx/pkg/files"

// Filter reports whether an entry should appear in a listing. It is
// re-applied on every directory load; the synthetic parent entry is
// never filtered.
type Filter func(files.Entry) bool

// TypeMatches reports whether the entry's classification is one of the
// allowed kinds. Entries with no classification never match.
func TypeMatches(allowed []files.Kind, e files.Entry) bool {
	kind, ok := e.Kind()
	if !ok {
		return false
	}
	for _, k := range allowed {
		if k == kind {
			return true
		}
	}
	return false
}

// KindIn returns a Filter accepting exactly the given kinds.
func KindIn(kinds ...files.Kind) Filter {
	allowed := make([]files.Kind, len(kinds))
	copy(allowed, kinds)
	return func(e files.Entry) bool {
		return TypeMatches(allowed, e)
	}
}
