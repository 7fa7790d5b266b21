// Package fsutils holds small filesystem helpers shared by the demo
// application.
package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osStat = os.Stat
var osUserHomeDir = os.UserHomeDir

// DirExists reports whether path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := osStat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ExpandHome expands a leading ~ to the user's home directory. The
// path is returned unchanged when it has no tilde prefix or the home
// directory cannot be determined.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := osUserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~/"))
}
