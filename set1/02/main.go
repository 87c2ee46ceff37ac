// 2. Fixed XOR

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cryptopals/codec"
	"cryptopals/internal/cli"
	"cryptopals/xor"
)

func main() {
	cli.Execute(newCommand())
}

func newCommand() *cobra.Command {
	return cli.NewCommand("02 [file ...]", "Fixed XOR", func(env *cli.Env, files []string) error {
		return env.EachInput(files, func(in io.Reader) error {
			return xorLines(env.Out, in)
		})
	})
}

// xorLines reads two hex-encoded lines and prints their XOR combination.
func xorLines(out io.Writer, in io.Reader) error {
	input := bufio.NewScanner(in)
	b1, err := readHexLine(input)
	if err != nil {
		return err
	}
	b2, err := readHexLine(input)
	if err != nil {
		return err
	}
	res, err := xor.Fixed(b1, b2)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, codec.EncodeHex(res))

	return nil
}

// readHexLine reads a hex-encoded line and returns a buffer.
func readHexLine(input *bufio.Scanner) ([]byte, error) {
	if !input.Scan() {
		if err := input.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	return codec.DecodeHex(input.Text())
}
