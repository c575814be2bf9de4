package ini

import (
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// Source is the input of Read: either a file on a types.FS or an
// already-open reader.
type Source interface {
	// Name identifies the source in error messages.
	Name() string
	// Open returns the content to read. The caller closes it.
	Open() (io.ReadCloser, error)
}

// FileSource reads a manifest file from a filesystem.
type FileSource struct {
	FS   types.FS
	Path string
}

// Name returns the file path.
func (s FileSource) Name() string { return s.Path }

// Open opens the file on the source filesystem.
func (s FileSource) Open() (io.ReadCloser, error) {
	if s.FS == nil || s.Path == "" {
		return nil, errors.New(errors.ErrMissingFile, "no input to read")
	}
	rc, err := s.FS.Open(s.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.MissingFiles(s.Path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", s.Path)
	}
	return rc, nil
}

// ReaderSource reads from an already-open stream. The stream is not closed.
type ReaderSource struct {
	Reader io.Reader
	Label  string
}

// Name returns the label, or "<stream>" when none was given.
func (s ReaderSource) Name() string {
	if s.Label == "" {
		return "<stream>"
	}
	return s.Label
}

// Open wraps the reader without taking ownership of it.
func (s ReaderSource) Open() (io.ReadCloser, error) {
	if s.Reader == nil {
		return nil, errors.New(errors.ErrMissingFile, "no input to read")
	}
	return io.NopCloser(s.Reader), nil
}
