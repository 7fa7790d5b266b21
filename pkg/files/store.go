package files

import (
	"context"
	"os"
)

// Store abstracts the filesystem a browser reads its listings from.
type Store interface {
	// ReadDir enumerates the children of the named directory,
	// excluding "." and "..".
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)

	// Stat reports metadata for the named file, following symlinks.
	// A broken symlink therefore fails, which downstream code treats
	// as "classification absent" rather than an error.
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
