// 1. Convert hex to base64

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cryptopals/codec"
	"cryptopals/internal/cli"
)

const challenge = "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d"

func main() {
	cli.Execute(newCommand())
}

func newCommand() *cobra.Command {
	return cli.NewCommand("01 [file ...]", "Convert hex to base64", run)
}

// run prints the challenge string in base64, or converts each named file.
func run(env *cli.Env, files []string) error {
	if len(files) == 0 {
		s, err := HexToBase64(challenge)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, s)
		return nil
	}
	return env.EachInput(files, func(in io.Reader) error {
		return convert(env.Out, in)
	})
}

// convert reads hex-encoded lines and prints them in base64.
func convert(out io.Writer, in io.Reader) error {
	input := bufio.NewScanner(in)
	for input.Scan() {
		s, err := HexToBase64(input.Text())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	}
	return input.Err()
}

// HexToBase64 converts a hex-encoded string to base64.
func HexToBase64(s string) (string, error) {
	buf, err := codec.DecodeHex(s)
	if err != nil {
		return "", err
	}
	return codec.EncodeBase64(buf), nil
}
