// Package cli holds the command plumbing shared by the challenge programs.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cryptopals/english"
)

// EnvPrefix prefixes the environment variables that mirror command flags.
const EnvPrefix = "CRYPTOPALS"

// Flags shared by several commands.
const (
	FlagLogLevel = "log-level"
	FlagSample   = "sample"
)

// Env is what a command body sees of its invocation.
type Env struct {
	In     io.Reader
	Out    io.Writer
	Logger log.Logger
	Config *viper.Viper
}

// RunFunc is the body of a challenge command.
type RunFunc func(env *Env, args []string) error

// NewCommand returns a command that calls fn with its flags bound to
// configuration. Unset flags fall back to CRYPTOPALS_* environment variables.
func NewCommand(use, short string, fn RunFunc) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logger, err := NewLogger(cmd.ErrOrStderr(), v.GetString(FlagLogLevel))
			if err != nil {
				return err
			}
			env := &Env{
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
				Logger: logger,
				Config: v,
			}
			return fn(env, args)
		},
	}
	cmd.Flags().String(FlagLogLevel, zerolog.ErrorLevel.String(), "log level (debug, info, warn, error)")

	return cmd
}

// AddSampleFlag adds the flag naming a sample text used for scoring.
func AddSampleFlag(cmd *cobra.Command) {
	cmd.Flags().String(FlagSample, "", "sample text for symbol frequencies (default: built-in English table)")
}

// NewLogger returns a plain-text logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, ErrConfig.Wrapf("log level %q", level)
	}
	return log.NewLogger(w, log.LevelOption(lvl), log.ColorOption(false)), nil
}

// Execute runs cmd and exits with status 1 if it fails.
func Execute(cmd *cobra.Command) {
	if err := executeAndReport(cmd); err != nil {
		os.Exit(1)
	}
}

// executeAndReport runs cmd and prints the message of any error it returns.
func executeAndReport(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		// Error() leaves out the stack location %v would append.
		fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	}
	return err
}

// EachInput calls fn with standard input if no files are named, and with
// each named file otherwise. A file that fails is logged and skipped.
func (env *Env) EachInput(files []string, fn func(io.Reader) error) error {
	if len(files) == 0 {
		return fn(env.In)
	}
	var failed int
	for _, file := range files {
		if err := eachFile(file, fn); err != nil {
			env.Logger.Error("skipping input", "file", file, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return ErrInput.Wrapf("%d of %d files", failed, len(files))
	}
	return nil
}

func eachFile(name string, fn func(io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(f)
}

// ScoreFunc returns the scoring function for candidate plaintexts: symbol
// frequencies of the configured sample file, or the built-in English table.
func (env *Env) ScoreFunc() (func([]byte) float64, error) {
	name := env.Config.GetString(FlagSample)
	if name == "" {
		return english.Score, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	env.Logger.Debug("scoring with sample", "file", name)
	return english.ScoreFunc(f)
}
