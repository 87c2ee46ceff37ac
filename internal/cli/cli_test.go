package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// run executes a command built around fn and returns its output streams.
func run(t *testing.T, fn RunFunc, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewCommand("test", "test command", fn)
	AddSampleFlag(cmd)
	return execute(cmd, stdin, args...)
}

func execute(cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// echo copies every input to the output.
func echo(env *Env, args []string) error {
	return env.EachInput(args, func(in io.Reader) error {
		_, err := io.Copy(env.Out, in)
		return err
	})
}

func TestEachInputStdin(t *testing.T) {
	stdout, _, err := run(t, echo, "from stdin")
	require.NoError(t, err)
	require.Equal(t, "from stdin", stdout)
}

func TestEachInputFiles(t *testing.T) {
	a := writeFile(t, "a.txt", "alpha\n")
	b := writeFile(t, "b.txt", "beta\n")

	stdout, _, err := run(t, echo, "ignored", a, b)
	require.NoError(t, err)
	require.Equal(t, "alpha\nbeta\n", stdout)
}

func TestEachInputSkipsFailures(t *testing.T) {
	a := writeFile(t, "a.txt", "alpha\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	stdout, stderr, err := run(t, echo, "", missing, a)
	require.ErrorIs(t, err, ErrInput)
	require.Equal(t, "alpha\n", stdout)
	require.Contains(t, stderr, "skipping input")
	require.Contains(t, stderr, "missing.txt")
}

func TestExecuteReportsError(t *testing.T) {
	a := writeFile(t, "a.txt", "alpha\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	var stdout, stderr bytes.Buffer
	cmd := NewCommand("test", "test command", echo)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--log-level", "disabled", missing, a})

	err := executeAndReport(cmd)
	require.ErrorIs(t, err, ErrInput)
	require.Equal(t, "alpha\n", stdout.String())
	require.Equal(t, "1 of 2 files: input failed\n", stderr.String())
	require.NotContains(t, stderr.String(), ".go:")
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("CRYPTOPALS_LOG_LEVEL", "loud")
	_, _, err := run(t, echo, "")
	require.ErrorIs(t, err, ErrConfig)
}

func TestLogLevelFlagOverridesEnv(t *testing.T) {
	t.Setenv("CRYPTOPALS_LOG_LEVEL", "loud")
	stdout, _, err := run(t, echo, "ok", "--log-level", "debug")
	require.NoError(t, err)
	require.Equal(t, "ok", stdout)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "value")
}

func TestScoreFunc(t *testing.T) {
	sample := writeFile(t, "sample.txt", "aab")

	var got float64
	score := func(env *Env, args []string) error {
		fn, err := env.ScoreFunc()
		if err != nil {
			return err
		}
		got = fn([]byte("ab"))
		return nil
	}

	_, _, err := run(t, score, "", "--sample", sample)
	require.NoError(t, err)
	require.InDelta(t, 2.0/3.0+1.0/3.0, got, 1e-9)

	t.Setenv("CRYPTOPALS_SAMPLE", filepath.Join(t.TempDir(), "missing.txt"))
	_, _, err = run(t, score, "")
	require.Error(t, err)
}
