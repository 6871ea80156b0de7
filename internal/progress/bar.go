package progress

import (
	"fmt"
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps a progress bar to track whether progress should be shown
type ProgressBar struct {
	bar          *progressbar.ProgressBar
	writer       io.Writer
	showProgress bool
}

// Write implements io.Writer so the bar can sit behind an io.TeeReader
func (p *ProgressBar) Write(b []byte) (int, error) {
	return p.bar.Write(b)
}

// Finish completes the progress bar and ends its line if progress is shown
func (p *ProgressBar) Finish() error {
	err := p.bar.Finish()
	if p.showProgress {
		fmt.Fprintln(p.writer)
	}
	return err
}

// NewProgressBar creates a scan progress bar on stderr.
// currentFile and totalFiles are shown in front of the description, e.g. "[2/5] notes.txt".
// When showProgress is false the bar renders to io.Discard.
func NewProgressBar(totalBytes int64, description string, currentFile, totalFiles int, showProgress bool) *ProgressBar {
	var writer io.Writer = ansi.NewAnsiStderr()
	if !showProgress {
		writer = io.Discard
	}
	return newProgressBar(writer, totalBytes, description, currentFile, totalFiles, showProgress)
}

func newProgressBar(writer io.Writer, totalBytes int64, description string, currentFile, totalFiles int, showProgress bool) *ProgressBar {
	descWithCount := fmt.Sprintf("[cyan][%d/%d][reset] %s", currentFile, totalFiles, description)

	bar := progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetDescription(descWithCount),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	return &ProgressBar{
		bar:          bar,
		writer:       writer,
		showProgress: showProgress,
	}
}
