// Package browser provides a directory listing widget for tview.
//
// The Browser wraps tview.List, which supplies cursor movement and
// rendering. The browser itself owns the directory path, the sorted
// and classified listing, and the committed selection. Every directory
// change re-reads the filesystem through a files.Store and replaces
// the listing wholesale.
package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/tviewx/pkg/files"
)

var osGetwd = os.Getwd

// ParentName is the name of the synthetic entry pointing at the parent
// directory. It is prepended to the listing of every non-root
// directory, after filtering and sorting.
const ParentName = ".."

type Browser struct {
	*tview.List

	store files.Store

	dir     string
	entries []files.Entry

	selection *files.Entry

	filter     Filter
	selectedFn func(files.Entry)
	changedFn  func(dir string)
	errFn      func(error)
}

type Option func(*Browser)

// WithFilter sets the predicate applied to every entry on each
// directory load. The synthetic parent entry is exempt.
func WithFilter(filter Filter) Option {
	return func(b *Browser) {
		b.filter = filter
	}
}

// New creates a browser listing startDir. An empty startDir defaults
// to the process working directory.
func New(store files.Store, startDir string, options ...Option) (*Browser, error) {
	b := &Browser{
		List:  tview.NewList().ShowSecondaryText(false),
		store: store,
	}
	b.List.SetHighlightFullLine(true)
	for _, option := range options {
		option(b)
	}
	if startDir == "" {
		wd, err := osGetwd()
		if err != nil {
			return nil, fmt.Errorf("browser: resolve working directory: %w", err)
		}
		startDir = wd
	}
	if err := b.SetDirectory(context.Background(), startDir); err != nil {
		return nil, err
	}
	return b, nil
}

// SetSelectedFileFunc sets the callback fired when the user accepts a
// non-directory entry.
func (b *Browser) SetSelectedFileFunc(f func(files.Entry)) *Browser {
	b.selectedFn = f
	return b
}

// SetDirectoryChangedFunc sets the callback fired after the listing
// has been replaced with a new directory's contents.
func (b *Browser) SetDirectoryChangedFunc(f func(dir string)) *Browser {
	b.changedFn = f
	return b
}

// SetErrorFunc sets the callback fired when a directory change
// triggered from the keyboard fails. The previous listing stays on
// screen; surfacing the error is the host's job.
func (b *Browser) SetErrorFunc(f func(error)) *Browser {
	b.errFn = f
	return b
}

// Path returns the directory currently listed.
func (b *Browser) Path() string {
	return b.dir
}

// Entries returns a copy of the current listing in display order.
func (b *Browser) Entries() []files.Entry {
	entries := make([]files.Entry, len(b.entries))
	copy(entries, b.entries)
	return entries
}

// SetDirectory replaces the listing with the contents of path. Nothing
// changes unless the whole read succeeds: on error the browser keeps
// its previous, still valid listing, path and selection.
func (b *Browser) SetDirectory(ctx context.Context, path string) error {
	path = filepath.Clean(path)
	children, err := b.store.ReadDir(ctx, path)
	if err != nil {
		return fmt.Errorf("browser: read directory %q: %w", path, err)
	}

	entries := make([]files.Entry, 0, len(children)+1)
	for _, child := range children {
		entry := b.classify(ctx, path, child)
		if b.filter != nil && !b.filter(entry) {
			continue
		}
		entries = append(entries, entry)
	}
	sortEntries(entries)
	if !isRoot(path) {
		kind := files.Directory
		parent := files.NewEntry(ParentName, filepath.Dir(path), &kind)
		entries = append([]files.Entry{parent}, entries...)
	}

	b.dir = path
	b.entries = entries
	b.selection = nil
	b.rebuildList()
	if b.changedFn != nil {
		b.changedFn(path)
	}
	return nil
}

// Reload re-reads the current directory. Cursor and selection reset
// like on any other directory change.
func (b *Browser) Reload(ctx context.Context) error {
	return b.SetDirectory(ctx, b.dir)
}

// classify builds an Entry for one directory child. A failed Stat
// (broken symlink, permission, race with deletion) degrades to an
// absent classification instead of failing the listing.
func (b *Browser) classify(ctx context.Context, dir string, child os.DirEntry) files.Entry {
	fullPath := filepath.Join(dir, child.Name())
	var kind *files.Kind
	if info, err := b.store.Stat(ctx, fullPath); err == nil {
		if k, ok := files.KindFromMode(info.Mode()); ok {
			kind = &k
		}
	}
	return files.NewEntry(child.Name(), fullPath, kind)
}

func (b *Browser) rebuildList() {
	b.List.Clear()
	for _, entry := range b.entries {
		text := fmt.Sprintf("[%s]%s[-]", colorTag(EntryColor(entry)), tview.Escape(entry.DisplayName()))
		b.List.AddItem(text, "", 0, nil)
	}
	if len(b.entries) > 0 {
		b.List.SetCurrentItem(0)
	}
}

// CursorEntry returns the entry under the list cursor. ok is false for
// an empty listing.
func (b *Browser) CursorEntry() (entry files.Entry, ok bool) {
	if len(b.entries) == 0 {
		return entry, false
	}
	i := b.List.GetCurrentItem()
	if i < 0 || i >= len(b.entries) {
		return entry, false
	}
	return b.entries[i], true
}

// Selection returns the last accepted non-directory entry. It is
// cleared whenever the listing is replaced.
func (b *Browser) Selection() (entry files.Entry, ok bool) {
	if b.selection == nil {
		return entry, false
	}
	return *b.selection, true
}

// HandleAccept acts on the entry under the cursor: a directory is
// descended into, anything else becomes the committed selection. An
// empty listing is a no-op.
func (b *Browser) HandleAccept(ctx context.Context) error {
	entry, ok := b.CursorEntry()
	if !ok {
		return nil
	}
	if entry.IsDir() {
		return b.SetDirectory(ctx, entry.Path())
	}
	selected := entry
	b.selection = &selected
	if b.selectedFn != nil {
		b.selectedFn(selected)
	}
	return nil
}

// HandleNavigation forwards a key event to the embedded list's cursor
// handling. It never touches the directory or the selection.
func (b *Browser) HandleNavigation(event *tcell.EventKey) {
	if handler := b.List.InputHandler(); handler != nil {
		handler(event, func(tview.Primitive) {})
	}
}

// InputHandler intercepts the accept and parent keys; everything else
// goes to the embedded list, which handles cursor movement and ignores
// the rest.
func (b *Browser) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch {
		case isAcceptKey(event):
			b.reportError(b.HandleAccept(context.Background()))
		case isParentKey(event):
			if !isRoot(b.dir) {
				b.reportError(b.SetDirectory(context.Background(), filepath.Dir(b.dir)))
			}
		default:
			if handler := b.List.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
		}
	})
}

func (b *Browser) reportError(err error) {
	if err != nil && b.errFn != nil {
		b.errFn(err)
	}
}

func isAcceptKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEnter, tcell.KeyRight:
		return true
	case tcell.KeyRune:
		return event.Rune() == 'l'
	}
	return false
}

func isParentKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return true
	case tcell.KeyRune:
		return event.Rune() == 'h'
	}
	return false
}

func isRoot(path string) bool {
	return filepath.Dir(path) == path
}
