package archive

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// Format represents the compression format of a counted file
type Format string

const (
	FormatNone Format = "none"
	FormatGzip Format = "gzip"
	FormatZstd Format = "zstd"
	FormatXz   Format = "xz"
)

// String returns the string representation of the compression format
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension for the compression format
func (f Format) Extension() string {
	switch f {
	case FormatGzip:
		return ".gz"
	case FormatZstd:
		return ".zst"
	case FormatXz:
		return ".xz"
	default:
		return ""
	}
}

// NewReader wraps reader so that reads return the decompressed stream.
// The returned ReadCloser releases decoder resources only; it never closes reader.
func (f Format) NewReader(reader io.Reader) (io.ReadCloser, error) {
	switch f {
	case FormatNone:
		return io.NopCloser(reader), nil
	case FormatGzip:
		gzipReader, err := pgzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzipReader, nil
	case FormatZstd:
		zstdReader, err := zstd.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return zstdReader.IOReadCloser(), nil
	case FormatXz:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return io.NopCloser(xzReader), nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", f)
	}
}

// NewWriter wraps writer so that writes are compressed in the given format.
// Closing the returned WriteCloser flushes the encoder but does not close writer.
func (f Format) NewWriter(writer io.Writer) (io.WriteCloser, error) {
	switch f {
	case FormatNone:
		return nopWriteCloser{writer}, nil
	case FormatGzip:
		return pgzip.NewWriter(writer), nil
	case FormatZstd:
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, nil
	case FormatXz:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", f)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// DetectFromFilename detects the compression format from a filename.
// Files without a known compressed extension are read as-is.
func DetectFromFilename(filename string) Format {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".gz"), strings.HasSuffix(lower, ".tgz"):
		return FormatGzip
	case strings.HasSuffix(lower, ".zst"):
		return FormatZstd
	case strings.HasSuffix(lower, ".xz"):
		return FormatXz
	default:
		return FormatNone
	}
}
