package core

import (
	"errors"
	"io"
)

// File is an open file bound to a variable: either a *NewFile created by the
// session, or a *ReadFile opened from disk.
type File interface {
	Name() string
	Len() (uint, error)
	ReadBytes(start, end uint) ([]byte, bool, error)
	Close() error

	kind() string
}

// NewFile is a file created by the session; it is the only kind of File that
// may be written.
type NewFile struct{ handle }

// ReadFile is an existing file, opened read only.
type ReadFile struct{ handle }

type handle struct {
	name string
	raw  RawFile
}

const fillChunk = 32 * 1024

// CreateNewFile exclusively creates name, pre-filled with size zero bytes.
func CreateNewFile(fsys FS, name string, size uint) (*NewFile, error) {
	raw, err := fsys.Create(name)
	if err != nil {
		return nil, IOError{"create", name, err}
	}
	f := &NewFile{handle{name, raw}}
	if err := f.zeroFill(size); err != nil {
		f.discard(fsys)
		return nil, err
	}
	return f, nil
}

// discard closes and removes a file that failed to be filled, so that a
// failed command leaves nothing behind.
func (f *NewFile) discard(fsys FS) {
	f.Close()
	fsys.Remove(f.name)
}

// OpenReadFile opens an existing name read only.
func OpenReadFile(fsys FS, name string) (*ReadFile, error) {
	raw, err := fsys.Open(name)
	if err != nil {
		return nil, IOError{"open", name, err}
	}
	return &ReadFile{handle{name, raw}}, nil
}

func (f *NewFile) zeroFill(size uint) error {
	zeros := make([]byte, min(size, fillChunk))
	for off := uint(0); off < size; {
		chunk := zeros[:min(size-off, uint(len(zeros)))]
		n, err := f.raw.WriteAt(chunk, int64(off))
		if err != nil {
			return IOError{"write", f.name, err}
		}
		off += uint(n)
	}
	return nil
}

// WriteBytes writes as much of p as fits before the end of the file,
// starting at offset; the file never grows past the size it was created with.
func (f *NewFile) WriteBytes(p []byte, offset uint) (uint, error) {
	size, err := f.Len()
	if err != nil {
		return 0, err
	}
	if offset >= size {
		return 0, nil
	}
	if room := size - offset; uint(len(p)) > room {
		p = p[:room]
	}
	n, err := f.raw.WriteAt(p, int64(offset))
	if err != nil {
		return uint(n), IOError{"write", f.name, err}
	}
	return uint(n), nil
}

func (h *handle) Name() string { return h.name }

// Len returns the current on disk size.
func (h *handle) Len() (uint, error) {
	if h.raw == nil {
		return 0, IOError{"stat", h.name, errClosed}
	}
	info, err := h.raw.Stat()
	if err != nil {
		return 0, IOError{"stat", h.name, err}
	}
	return uint(info.Size()), nil
}

// ReadBytes reads [start, end) clamping end to Len. It returns false if start
// is not less than Len.
func (h *handle) ReadBytes(start, end uint) ([]byte, bool, error) {
	size, err := h.Len()
	if err != nil {
		return nil, false, err
	}
	if start >= size {
		return nil, false, nil
	}
	if end > size {
		end = size
	}
	if end < start {
		end = start
	}
	p := make([]byte, end-start)
	n, err := h.raw.ReadAt(p, int64(start))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, false, IOError{"read", h.name, err}
	}
	return p[:n], true, nil
}

// Close releases the OS handle; closing twice is a no-op.
func (h *handle) Close() error {
	if h.raw == nil {
		return nil
	}
	raw := h.raw
	h.raw = nil
	if err := raw.Close(); err != nil {
		return IOError{"close", h.name, err}
	}
	return nil
}

var errClosed = errors.New("file already closed")
