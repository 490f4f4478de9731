package core

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// RawFile is the file handle surface used by File values; *os.File
// implements it.
type RawFile interface {
	io.ReaderAt
	io.WriterAt
	io.Closer
	Stat() (fs.FileInfo, error)
}

// FS creates and opens the files that back File values.
type FS interface {
	// Create must exclusively create name for reading and writing, failing
	// if it already exists.
	Create(name string) (RawFile, error)

	// Open must open an existing name read only.
	Open(name string) (RawFile, error)

	// Remove deletes a file that Create made but that could not be filled.
	Remove(name string) error
}

// OSFS implements FS with the os package, resolving relative names against
// Dir if it is not empty.
type OSFS struct{ Dir string }

func (fsys OSFS) Create(name string) (RawFile, error) {
	f, err := os.OpenFile(fsys.path(name), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (fsys OSFS) Open(name string) (RawFile, error) {
	f, err := os.Open(fsys.path(name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (fsys OSFS) Remove(name string) error {
	return os.Remove(fsys.path(name))
}

func (fsys OSFS) path(name string) string {
	if fsys.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(fsys.Dir, name)
}
