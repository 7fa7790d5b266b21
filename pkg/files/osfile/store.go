// Package osfile implements files.Store over the local filesystem.
package osfile

import (
	"context"
	"os"

	"github.com/datatug/tviewx/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat

var _ files.Store = (*Store)(nil)

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}
