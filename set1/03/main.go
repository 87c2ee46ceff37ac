// 3. Single-byte XOR cipher

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
	cmd := cli.NewCommand("03 [file ...]", "Single-byte XOR cipher", func(env *cli.Env, files []string) error {
		score, err := env.ScoreFunc()
		if err != nil {
			return err
		}
		return env.EachInput(files, func(in io.Reader) error {
			return decrypt(env.Out, env.Logger, in, score)
		})
	})
	cli.AddSampleFlag(cmd)

	return cmd
}

// decrypt reads hex-encoded ciphertext and prints plaintext.
func decrypt(out io.Writer, logger log.Logger, in io.Reader, score func([]byte) float64) error {
	buf, err := readHex(in)
	if err != nil {
		return err
	}
	c := xor.BreakSingleByte(buf, score)
	logger.Info("recovered key", "key", fmt.Sprintf("%#02x", c.Key), "score", c.Score)
	fmt.Fprintln(out, string(c.Plaintext))

	return nil
}

// readHex reads hex-encoded lines and returns them as one buffer.
func readHex(in io.Reader) ([]byte, error) {
	var buf []byte
	input := bufio.NewScanner(in)
	for input.Scan() {
		line, err := codec.DecodeHex(input.Text())
		if err != nil {
			return nil, err
		}
		buf = append(buf, line...)
	}
	if err := input.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}
