package counter

import (
	"io"
	"os"

	"github.com/tympanix/wc-cli/internal/archive"
)

// Tracker observes the raw bytes read from a file, e.g. a progress bar
type Tracker interface {
	io.Writer
	Finish() error
}

// FileOptions controls how CountFile reads a file
type FileOptions struct {
	Decompress bool                                 // Count the decompressed content of .gz, .zst and .xz files
	NewTracker func(path string, size int64) Tracker // Optional; called once the file is opened
}

// CountFile opens path and counts its content.
// Every failure is returned as a *FileAccessError.
func CountFile(path string, opts FileOptions) (FileCount, error) {
	file, err := os.Open(path)
	if err != nil {
		return FileCount{}, newFileAccessError(path, "open", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return FileCount{}, newFileAccessError(path, "stat", err)
	}
	if info.IsDir() {
		return FileCount{}, newFileAccessError(path, "open", ErrIsDirectory)
	}

	var reader io.Reader = file
	if opts.NewTracker != nil {
		tracker := opts.NewTracker(path, info.Size())
		defer tracker.Finish()
		reader = io.TeeReader(reader, tracker)
	}

	format := archive.FormatNone
	if opts.Decompress {
		format = archive.DetectFromFilename(path)
	}
	content, err := format.NewReader(reader)
	if err != nil {
		return FileCount{}, newFileAccessError(path, "decompress", err)
	}
	defer content.Close()

	count, err := Count(content)
	if err != nil {
		return FileCount{}, newFileAccessError(path, "read", err)
	}
	return count, nil
}
