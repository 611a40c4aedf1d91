package main

import (
	"fmt"
	"log/slog"
	"os"

	"dockerlog/internal/logcat"
	"dockerlog/pkg/stdmux"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	streamName string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "dockerlog",
	Short: "dockerlog - Decode multiplexed container log streams",
	Long: `dockerlog reads a multiplexed stdout/stderr log stream (as returned by the container
logs API) from stdin and writes the stdout lines to stdout.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(false)
		warnIfTerminal(logger)
		return logcat.PrintLines(os.Stdin, os.Stdout, stdmux.Stdout, logger)
	},
}

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Print the lines of one stream",
	Long: `Read a multiplexed log stream from stdin and print the lines of the selected stream.

Lines may be split across frames; they are reassembled before printing. A final line
without trailing newline is printed as well.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		stream, err := stdmux.ParseStreamTag(streamName)
		if err != nil {
			return err
		}
		logger := newLogger(debug)
		warnIfTerminal(logger)
		return logcat.PrintLines(os.Stdin, os.Stdout, stream, logger)
	},
}

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Print every frame of both streams",
	Long: `Read a multiplexed log stream from stdin and print one line per frame:

  stream length: "payload"

The payload is quoted, so binary data and newlines are visible.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(debug)
		warnIfTerminal(logger)
		return logcat.PrintFrames(os.Stdin, os.Stdout, logger)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Wrap stdin into a multiplexed log stream",
	Long: `Read raw data from stdin and write it to stdout as frames of the selected stream.

This is the inverse of "lines" and is mostly useful to produce test input:

  printf 'hello\n' | dockerlog encode --stream stderr | dockerlog lines --stream stderr`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		stream, err := stdmux.ParseStreamTag(streamName)
		if err != nil {
			return err
		}
		return logcat.Encode(os.Stdin, os.Stdout, stream)
	},
}

// newLogger returns a text logger on stderr. Only warnings and errors are shown unless
// debug is set.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func warnIfTerminal(logger *slog.Logger) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("Reading multiplexed log stream from a terminal, end input with Ctrl-D")
	}
}

func init() {
	linesCmd.Flags().StringVarP(&streamName, "stream", "s", "stdout", "Stream to print: stdout or stderr")
	linesCmd.Flags().BoolVar(&debug, "debug", false, "Log every frame to stderr")

	framesCmd.Flags().BoolVar(&debug, "debug", false, "Log every frame to stderr")

	encodeCmd.Flags().StringVarP(&streamName, "stream", "s", "stdout", "Stream to tag the data with: stdout or stderr")

	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(encodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
