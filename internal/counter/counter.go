package counter

import (
	"bufio"
	"errors"
	"io"
)

const bufferSize = 64 * 1024

// FileCount holds the counts computed for a single file
type FileCount struct {
	Bytes int64
	Words int64
	Lines int64
}

// Add returns the sum of c and other
func (c FileCount) Add(other FileCount) FileCount {
	return FileCount{
		Bytes: c.Bytes + other.Bytes,
		Words: c.Words + other.Words,
		Lines: c.Lines + other.Lines,
	}
}

// IsSpace reports whether b separates words.
// Only ASCII whitespace counts: space, \t, \n, \v, \f and \r.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Count scans r once and returns its byte, word and line counts.
//
// A line is a run of bytes up to and including '\n', or the non-empty tail
// before EOF. Bytes is the number of bytes consumed through the last line
// read. On a read error no partial count is returned.
func Count(r io.Reader) (FileCount, error) {
	var (
		reader  = bufio.NewReaderSize(r, bufferSize)
		count   FileCount
		inWord  bool
		partial bool
	)
	for {
		// ReadSlice hands back at most one buffer's worth; long lines arrive in pieces
		chunk, err := reader.ReadSlice('\n')
		if len(chunk) > 0 {
			count.Bytes += int64(len(chunk))
			for _, b := range chunk {
				if IsSpace(b) {
					inWord = false
				} else if !inWord {
					inWord = true
					count.Words++
				}
			}
			partial = chunk[len(chunk)-1] != '\n'
			if !partial {
				count.Lines++
			}
		}

		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
		case errors.Is(err, io.EOF):
			if partial {
				count.Lines++
			}
			return count, nil
		default:
			return FileCount{}, err
		}
	}
}
