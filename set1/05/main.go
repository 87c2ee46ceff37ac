// 5. Implement repeating-key XOR

package main

import (
	"bufio"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cryptopals/codec"
	"cryptopals/internal/cli"
	"cryptopals/xor"
)

const secret = "ICE"

const (
	flagKey     = "key"
	flagDecrypt = "decrypt"
)

func main() {
	cli.Execute(newCommand())
}

func newCommand() *cobra.Command {
	cmd := cli.NewCommand("05 [file ...]", "Implement repeating-key XOR", run)
	cmd.Flags().String(flagKey, secret, "repeating XOR key")
	cmd.Flags().BoolP(flagDecrypt, "d", false, "decrypt")

	return cmd
}

func run(env *cli.Env, files []string) error {
	fn := encrypt
	if env.Config.GetBool(flagDecrypt) {
		fn = decrypt
	}
	key := []byte(env.Config.GetString(flagKey))
	return env.EachInput(files, func(in io.Reader) error {
		// Every input starts at the beginning of the key.
		stream, err := xor.NewCipher(key)
		if err != nil {
			return err
		}
		return fn(env.Out, in, stream)
	})
}

// encrypt reads plaintext and prints hex-encoded ciphertext.
func encrypt(out io.Writer, in io.Reader, stream cipher.Stream) error {
	buf, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	stream.XORKeyStream(buf, buf)
	fmt.Fprintln(out, codec.EncodeHex(buf))

	return nil
}

// decrypt reads hex-encoded ciphertext and prints plaintext.
func decrypt(out io.Writer, in io.Reader, stream cipher.Stream) error {
	var buf []byte
	input := bufio.NewScanner(in)
	for input.Scan() {
		line, err := codec.DecodeHex(input.Text())
		if err != nil {
			return err
		}
		buf = append(buf, line...)
	}
	if err := input.Err(); err != nil {
		return err
	}
	stream.XORKeyStream(buf, buf)
	fmt.Fprint(out, string(buf))

	return nil
}
