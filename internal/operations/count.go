package operations

import (
	"io"
	"time"

	"github.com/tympanix/wc-cli/internal/config"
	"github.com/tympanix/wc-cli/internal/counter"
	"github.com/tympanix/wc-cli/internal/output"
	"github.com/tympanix/wc-cli/internal/progress"
	"github.com/tympanix/wc-cli/internal/util"
)

// CountMain counts every path in order and prints one row per file to stdout.
// A file that cannot be read is reported and skipped; the remaining files are still counted.
func CountMain(stdout io.Writer, args []string, cfg config.Config, opts *CountOptions) CountStatus {
	logger := opts.Logger
	if logger == nil {
		logger = util.NewLogger(io.Discard)
	}

	paths := util.ExcludePaths(util.ExpandPaths(args), opts.Exclude)
	logger.VerbosePrintf("Counting %d file(s)\n", len(paths))

	report := output.NewCountReport(stdout, cfg, logger, opts.VerboseMode)
	for i, path := range paths {
		report.RecordFile(countFile(path, i+1, len(paths), opts))
	}

	if opts.Total {
		report.PrintTotal()
	}
	report.PrintSummary()

	if report.Failed() > 0 {
		return CountFileError
	}
	return CountSuccess
}

func countFile(path string, current, total int, opts *CountOptions) output.FileResult {
	fileOpts := counter.FileOptions{Decompress: opts.Decompress}
	if opts.ShowProgress && !opts.QuietMode {
		fileOpts.NewTracker = func(path string, size int64) counter.Tracker {
			return progress.NewProgressBar(size, path, current, total, true)
		}
	}

	startTime := time.Now()
	count, err := counter.CountFile(path, fileOpts)
	result := output.FileResult{
		Path:      path,
		Count:     count,
		Status:    output.FileStatusCounted,
		StartTime: startTime,
		EndTime:   time.Now(),
	}
	if err != nil {
		result.Status = output.FileStatusFailed
		result.Error = err
	}
	return result
}
