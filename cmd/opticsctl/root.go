package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/authcorp/optics/config"
	"github.com/authcorp/optics/optics"
	"github.com/spf13/cobra"
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	settings   config.Settings
	logger     *slog.Logger

	// flag overrides; empty means "use settings"
	format    string
	output    string
	pretty    bool
	lenient   bool
	logLevel  string
	valueJSON string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "opticsctl",
		Short:         "Read and update JSON/YAML documents through optics paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "settings file (JSON or YAML)")
	pf.StringVarP(&a.format, "format", "f", "", "input format: json or yaml (default: from file extension)")
	pf.StringVarP(&a.output, "output", "o", "", "output format: json or yaml (default: input format)")
	pf.BoolVar(&a.pretty, "pretty", false, "indent JSON output")
	pf.BoolVar(&a.lenient, "lenient-index", false, "ignore out-of-range indexes on set instead of failing")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		a.readCmd(opGet, "get PATH [FILE]", "Print the single focus of a lens path"),
		a.readCmd(opPreview, "preview PATH [FILE]", "Print the first focus, failing when there is none"),
		a.readCmd(opAll, "all PATH [FILE]", "Print every focus as an array"),
		a.readCmd(opCount, "count PATH [FILE]", "Print the number of foci"),
		a.setCmd(),
		a.readCmd(opRemove, "remove PATH [FILE]", "Print the document with every focus removed"),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	s, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		s.Format = a.format
	}
	if flags.Changed("output") {
		s.Output = a.output
	}
	if flags.Changed("pretty") {
		s.Pretty = a.pretty
	}
	if flags.Changed("lenient-index") {
		s.IndexOutOfRange = optics.OutOfRangeFail
		if a.lenient {
			s.IndexOutOfRange = optics.OutOfRangeIgnore
		}
	}
	if flags.Changed("log-level") {
		if err := s.LogLevel.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s
	a.logger = newLogger(a.stderr, s)
	return nil
}

func newLogger(w io.Writer, s config.Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.LogLevel}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) readCmd(op operation, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), op, args, nil)
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set PATH [FILE]",
		Short: "Print the document with every focus replaced by --value",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(a.valueJSON)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), opSet, args, value)
		},
	}
	cmd.Flags().StringVar(&a.valueJSON, "value", "", "replacement value as JSON")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
