package fs

import (
	"io"
	"os"
)

// File is an open record file. Ingestion only reads sequentially.
type File interface {
	io.ReadCloser
	Stat() (os.FileInfo, error)
}

// FileSystem opens record files for reading.
type FileSystem interface {
	Open(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
}

// LocalFS reads from the local disk. It is the only FileSystem that record
// files can be memory mapped from.
type LocalFS struct{}

// Open opens name read-only.
func (LocalFS) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Stat returns the file info of name.
func (LocalFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}
