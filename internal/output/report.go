package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tympanix/wc-cli/internal/config"
	"github.com/tympanix/wc-cli/internal/counter"
	"github.com/tympanix/wc-cli/internal/util"
)

// TotalLabel names the summed row printed by PrintTotal
const TotalLabel = "total"

type FileStatus string

const (
	FileStatusCounted FileStatus = "counted"
	FileStatusFailed  FileStatus = "failed"
)

// FileResult is the outcome of counting one file argument
type FileResult struct {
	Path      string
	Count     counter.FileCount
	Status    FileStatus
	Error     error
	StartTime time.Time
	EndTime   time.Time
}

// CountReport prints rows as files are recorded and keeps what is needed for the total and summary
type CountReport struct {
	stdout      io.Writer
	cfg         config.Config
	logger      util.Logger
	verboseMode bool
	startTime   time.Time
	files       []FileResult
}

func NewCountReport(stdout io.Writer, cfg config.Config, logger util.Logger, verboseMode bool) *CountReport {
	return &CountReport{
		stdout:      stdout,
		cfg:         cfg,
		logger:      logger,
		verboseMode: verboseMode,
		startTime:   time.Now(),
		files:       make([]FileResult, 0),
	}
}

// FormatRow renders the enabled counts in the order lines, words, bytes followed by label
func FormatRow(cfg config.Config, count counter.FileCount, label string) string {
	fields := make([]string, 0, 4)
	if cfg.ShowLines {
		fields = append(fields, strconv.FormatInt(count.Lines, 10))
	}
	if cfg.ShowWords {
		fields = append(fields, strconv.FormatInt(count.Words, 10))
	}
	if cfg.ShowBytes {
		fields = append(fields, strconv.FormatInt(count.Bytes, 10))
	}
	fields = append(fields, label)
	return strings.Join(fields, " ")
}

// RecordFile prints the row for a counted file, or a diagnostic for a failed one.
// A failed file never produces a row on stdout.
func (r *CountReport) RecordFile(file FileResult) {
	r.files = append(r.files, file)

	switch file.Status {
	case FileStatusCounted:
		fmt.Fprintln(r.stdout, FormatRow(r.cfg, file.Count, file.Path))
		r.logger.VerbosePrintf("counted %s (%s) in %s\n", file.Path, formatBytes(file.Count.Bytes), formatDuration(file.EndTime.Sub(file.StartTime)))
	case FileStatusFailed:
		r.logger.Errorf("%v", file.Error)
	}
}

// Total sums the counts of every successfully counted file
func (r *CountReport) Total() counter.FileCount {
	var total counter.FileCount
	for _, file := range r.files {
		if file.Status == FileStatusCounted {
			total = total.Add(file.Count)
		}
	}
	return total
}

// PrintTotal prints the summed row labeled "total"
func (r *CountReport) PrintTotal() {
	fmt.Fprintln(r.stdout, FormatRow(r.cfg, r.Total(), TotalLabel))
}

// Failed returns the number of files that could not be counted
func (r *CountReport) Failed() int {
	failed := 0
	for _, file := range r.files {
		if file.Status == FileStatusFailed {
			failed++
		}
	}
	return failed
}

// PrintSummary writes a one line summary to the logger in verbose mode
func (r *CountReport) PrintSummary() {
	if !r.verboseMode {
		return
	}
	elapsed := time.Since(r.startTime)
	failed := r.Failed()

	summary := fmt.Sprintf("Files counted: %d", len(r.files)-failed)
	if failed > 0 {
		summary += fmt.Sprintf(", failed: %d", failed)
	}
	summary += fmt.Sprintf(", size: %s", formatBytes(r.Total().Bytes))
	summary += fmt.Sprintf(", time: %s", formatDuration(elapsed))

	r.logger.Println(summary)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}
