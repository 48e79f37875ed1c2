package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tusharlock10/beaconrx-fingerprint/internal/config"
	"github.com/tusharlock10/beaconrx-fingerprint/internal/fingerprint"
	"github.com/tusharlock10/beaconrx-fingerprint/internal/hardware"
	"github.com/tusharlock10/beaconrx-fingerprint/internal/report"
)

// errDuplicateFlag is returned when a credential flag is given more than once.
var errDuplicateFlag = errors.New("flag given more than once")

// usageError marks an input validation failure. These are printed together
// with the usage block.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// credentialFlag is a string flag that refuses to be set twice.
type credentialFlag struct {
	value string
	set   bool
}

var _ pflag.Value = (*credentialFlag)(nil)

func (f *credentialFlag) String() string { return f.value }
func (f *credentialFlag) Type() string   { return "string" }

func (f *credentialFlag) Set(s string) error {
	if f.set {
		return errDuplicateFlag
	}
	f.value, f.set = s, true
	return nil
}

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string, collector hardware.Collector, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCmd(collector)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(stderr, "Error: %v\n\n%s", err, cmd.UsageString())
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(collector hardware.Collector) *cobra.Command {
	var (
		username credentialFlag
		passkey  credentialFlag
		pipeline string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:           "beaconrx --username <name> --passkey <key>",
		Short:         "Derive a salted hardware fingerprint for this machine",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !username.set {
				return &usageError{errors.New("missing required flag --username")}
			}
			if !passkey.set {
				return &usageError{errors.New("missing required flag --passkey")}
			}

			cfg := &config.Config{
				Credentials: config.Credentials{Username: username.value, Passkey: passkey.value},
				Pipeline:    pipeline,
				Verbose:     verbose,
				Version:     version,
			}
			if err := cfg.Validate(); err != nil {
				return &usageError{err}
			}
			p, err := fingerprint.ParsePipeline(cfg.Pipeline)
			if err != nil {
				return &usageError{err}
			}

			return run(cmd.Context(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg.Verbose), collector, cfg.Credentials, p)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := cmd.Flags()
	flags.VarP(&username, "username", "u", "Username used to salt the fingerprint (letters and digits only)")
	flags.VarP(&passkey, "passkey", "p", "Passkey used to salt the fingerprint (letters and digits only)")
	flags.StringVar(&pipeline, "pipeline", string(fingerprint.DefaultPipeline), "Fingerprint pipeline: v2, or v1 to reproduce legacy fingerprints")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log failed hardware queries to stderr")

	return cmd
}

// run collects the hardware record, derives the fingerprint and prints the report.
func run(ctx context.Context, out io.Writer, logger zerolog.Logger, collector hardware.Collector, creds config.Credentials, p fingerprint.Pipeline) error {
	rec := hardware.Collect(ctx, collector, logger)
	hw := fingerprint.Build(creds, rec)

	res, err := fingerprint.Fingerprint(hw, creds, p)
	if err != nil {
		return fmt.Errorf("fingerprint: %w", err)
	}
	logger.Debug().Str("pipeline", string(res.Pipeline)).Int("hardware_string_len", len(hw)).Msg("fingerprint derived")

	if err := report.Write(out, rec, hw, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
