package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tympanix/wc-cli/internal/config"
	"github.com/tympanix/wc-cli/internal/operations"
	"github.com/tympanix/wc-cli/internal/util"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	status := operations.CountSuccess
	rootCmd := buildRootCommand(stdout, stderr, &status)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var argErr *config.ArgumentError
		if errors.As(err, &argErr) {
			fmt.Fprintf(stderr, "%s%v\n", util.Prefix, argErr.Err)
			fmt.Fprintln(stderr, "Try 'wc --help' for more information.")
			return int(operations.CountArgumentError)
		}
		fmt.Fprintf(stderr, "%s%v\n", util.Prefix, err)
		return int(operations.CountFileError)
	}
	return int(status)
}

func buildRootCommand(stdout, stderr io.Writer, status *operations.CountStatus) *cobra.Command {
	var countBytes, countWords, countLines bool
	var quietMode, verboseMode, showProgress bool
	var excludePattern string
	opts := &operations.CountOptions{}

	var rootCmd = &cobra.Command{
		Use:   "wc [OPTION]... FILE...",
		Short: "Print newline, word, and byte counts for each FILE",
		Long: "Print newline, word, and byte counts for each FILE.\n\n" +
			"A word is a run of non-whitespace bytes. With no counting option,\n" +
			"lines, words and bytes are printed, in that order.\n\n" +
			"Exit codes:\n  0 - Success\n  1 - One or more files could not be read\n  2 - Invalid arguments",
		Version:               version,
		SilenceErrors:         true,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return config.NewArgumentError("missing file operand")
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if quietMode && verboseMode {
				return config.NewArgumentError("--quiet and --verbose cannot be used together")
			}
			exclude, err := util.ParseGlobPattern(excludePattern)
			if err != nil {
				return &config.ArgumentError{Err: err}
			}
			opts.Exclude = exclude

			if quietMode {
				opts.Logger = util.NewLogger(io.Discard)
			} else if verboseMode {
				opts.Logger = util.NewVerboseLogger(stderr)
			} else {
				opts.Logger = util.NewLogger(stderr)
			}
			opts.QuietMode = quietMode
			opts.VerboseMode = verboseMode
			opts.ShowProgress = showProgress && config.Isatty(os.Stderr)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.New(countBytes, countWords, countLines)
			*status = operations.CountMain(cmd.OutOrStdout(), args, cfg, opts)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate("wc version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &config.ArgumentError{Err: err}
	})

	rootCmd.Flags().BoolVarP(&countBytes, "bytes", "c", false, "print the byte counts")
	rootCmd.Flags().BoolVarP(&countWords, "words", "w", false, "print the word counts")
	rootCmd.Flags().BoolVarP(&countLines, "lines", "l", false, "print the newline counts")
	rootCmd.Flags().Bool("help", false, "display this help and exit")

	rootCmd.Flags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress error messages (the exit code still reports failures)")
	rootCmd.Flags().BoolVarP(&verboseMode, "verbose", "v", false, "Enable verbose output on stderr")
	rootCmd.Flags().BoolVarP(&opts.Decompress, "decompress", "z", false, "Count the decompressed content of .gz, .zst and .xz files")
	rootCmd.Flags().BoolVar(&opts.Total, "total", false, "Print a line with the summed counts of all files")
	rootCmd.Flags().StringVarP(&excludePattern, "exclude", "e", "", "Glob pattern(s) of files to skip (e.g., '**/*.log', '**/*.log,!**/keep.log')")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar on stderr while scanning")

	return rootCmd
}
