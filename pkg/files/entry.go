// Package files models the filesystem side of directory browsing:
// listing entries, their type classification, and the store they are
// read from.
package files

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entry is one row of a directory listing. Immutable once constructed.
type Entry struct {
	name        string
	displayName string
	path        string
	kind        *Kind
}

// NewEntry builds an entry for a file called name living at the given
// absolute path. kind may be nil when classification failed (broken
// symlink, stat error, race with deletion); such entries never match a
// type filter and sort as non-directories.
func NewEntry(name, path string, kind *Kind) Entry {
	e := Entry{
		name:        name,
		displayName: SanitizeName(name),
		path:        path,
	}
	if kind != nil {
		k := *kind
		e.kind = &k
	}
	return e
}

// Name returns the raw file name as read from the directory. It may
// contain non-printable bytes.
func (e Entry) Name() string { return e.name }

// DisplayName returns the name with non-printable characters replaced,
// safe for fixed-width terminal output.
func (e Entry) DisplayName() string { return e.displayName }

// Path returns the absolute path of the entry.
func (e Entry) Path() string { return e.path }

// Kind returns the entry's classification. ok is false when the type
// could not be determined.
func (e Entry) Kind() (kind Kind, ok bool) {
	if e.kind == nil {
		return 0, false
	}
	return *e.kind, true
}

// IsDir reports whether the entry is classified as a directory.
// Unclassified entries report false.
func (e Entry) IsDir() bool {
	return e.kind != nil && *e.kind == Directory
}

const placeholder = '?'

// SanitizeName replaces every non-printable rune, and every byte that
// is not part of valid UTF-8, with a single '?'. Replacement is
// one-for-one so the rune count is preserved for layout, and the
// function is idempotent.
func SanitizeName(name string) string {
	if utf8.ValidString(name) && strings.IndexFunc(name, isNotPrintable) < 0 {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteByte(placeholder)
		case isNotPrintable(r):
			sb.WriteRune(placeholder)
		default:
			sb.WriteString(name[i : i+size])
		}
		i += size
	}
	return sb.String()
}

func isNotPrintable(r rune) bool {
	return !unicode.IsPrint(r)
}
