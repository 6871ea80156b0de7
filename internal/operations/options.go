package operations

import (
	"github.com/tympanix/wc-cli/internal/util"
)

// CountOptions holds the options that do not change which counts are printed
type CountOptions struct {
	Logger       util.Logger
	QuietMode    bool
	VerboseMode  bool
	Decompress   bool              // Count the decompressed content of .gz, .zst and .xz files
	Total        bool              // Print a summed "total" row after the per-file rows
	ShowProgress bool              // Render a progress bar on stderr (only when stderr is a terminal)
	Exclude      *util.GlobPattern // Optional exclude patterns (comma-separated, supports negation with !)
}

// CountStatus represents the exit status of a count run
type CountStatus int

const (
	CountSuccess       CountStatus = 0
	CountFileError     CountStatus = 1
	CountArgumentError CountStatus = 2
)
