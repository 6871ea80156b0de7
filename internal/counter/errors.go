package counter

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrIsDirectory is the cause of a FileAccessError raised for a directory argument
var ErrIsDirectory = errors.New("is a directory")

// FileAccessError reports a file that could not be opened or read to the end
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// newFileAccessError strips the *fs.PathError layer so the path is not repeated in the message
func newFileAccessError(path, op string, err error) *FileAccessError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &FileAccessError{Path: path, Op: op, Err: err}
}
