// 6. Break repeating-key XOR

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

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
	cmd := cli.NewCommand("06 [file ...]", "Break repeating-key XOR", func(env *cli.Env, files []string) error {
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

// decrypt reads base64-encoded ciphertext and prints plaintext.
func decrypt(out io.Writer, logger log.Logger, in io.Reader, score func([]byte) float64) error {
	buf, err := readBase64(in)
	if err != nil {
		return err
	}
	key, err := xor.BreakRepeating(buf, score)
	if err != nil {
		return err
	}
	logger.Info("recovered key", "size", len(key), "key", fmt.Sprintf("%q", key))

	stream, err := xor.NewCipher(key)
	if err != nil {
		return err
	}
	stream.XORKeyStream(buf, buf)
	fmt.Fprint(out, string(buf))

	return nil
}

// readBase64 joins base64-encoded lines and decodes them.
func readBase64(in io.Reader) ([]byte, error) {
	var b strings.Builder
	input := bufio.NewScanner(in)
	for input.Scan() {
		b.WriteString(strings.TrimSpace(input.Text()))
	}
	if err := input.Err(); err != nil {
		return nil, err
	}
	return codec.DecodeBase64(b.String())
}
