package files

import "os"

// Kind classifies a directory entry by the file type recorded in its
// filesystem metadata.
type Kind int

const (
	RegularFile Kind = iota
	BlockDevice
	CharDevice
	NamedPipe
	Directory
	SymbolicLink
	Socket
)

func (k Kind) String() string {
	switch k {
	case RegularFile:
		return "file"
	case BlockDevice:
		return "block device"
	case CharDevice:
		return "character device"
	case NamedPipe:
		return "named pipe"
	case Directory:
		return "directory"
	case SymbolicLink:
		return "symlink"
	case Socket:
		return "socket"
	}
	return "unknown"
}

// KindFromMode maps a file mode to its Kind. ok is false when the mode
// carries no recognized type, e.g. os.ModeIrregular.
func KindFromMode(mode os.FileMode) (kind Kind, ok bool) {
	switch {
	case mode.IsDir():
		return Directory, true
	case mode&os.ModeSymlink != 0:
		return SymbolicLink, true
	case mode&os.ModeCharDevice != 0:
		return CharDevice, true
	case mode&os.ModeDevice != 0:
		return BlockDevice, true
	case mode&os.ModeNamedPipe != 0:
		return NamedPipe, true
	case mode&os.ModeSocket != 0:
		return Socket, true
	case mode.IsRegular():
		return RegularFile, true
	}
	return 0, false
}
