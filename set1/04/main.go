// 4. Detect single-character XOR

package main

import (
	"bufio"
	"fmt"
	"io"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"cryptopals/codec"
	"cryptopals/internal/cli"
	"cryptopals/xor"
)

func main() {
	cli.Execute(newCommand())
}

func newCommand() *cobra.Command {
	cmd := cli.NewCommand("04 [file ...]", "Detect single-character XOR", func(env *cli.Env, files []string) error {
		score, err := env.ScoreFunc()
		if err != nil {
			return err
		}
		return env.EachInput(files, func(in io.Reader) error {
			return detectSingleXOR(env.Out, env.Logger, in, score)
		})
	})
	cli.AddSampleFlag(cmd)

	return cmd
}

// detectSingleXOR reads hex-encoded lines, decrypts the one that was
// encrypted with single-byte XOR, and prints the plaintext.
func detectSingleXOR(out io.Writer, logger log.Logger, in io.Reader, score func([]byte) float64) error {
	var lines [][]byte
	input := bufio.NewScanner(in)
	for input.Scan() {
		line, err := codec.DecodeHex(input.Text())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	if err := input.Err(); err != nil {
		return err
	}
	i, c, err := xor.Detect(lines, score)
	if err != nil {
		return err
	}
	// Line numbers start at 1.
	logger.Info("detected", "line", i+1, "key", fmt.Sprintf("%#02x", c.Key))
	fmt.Fprint(out, string(c.Plaintext))

	return nil
}
