package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cryptopals/xor"
)

const (
	plaintext  = "Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal"
	ciphertext = "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestEncrypt(t *testing.T) {
	stream, err := xor.NewCipher([]byte(secret))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, encrypt(&out, strings.NewReader(plaintext), stream))
	require.Equal(t, ciphertext+"\n", out.String())
}

func TestDecrypt(t *testing.T) {
	stream, err := xor.NewCipher([]byte(secret))
	require.NoError(t, err)

	// Line breaks in the ciphertext are ignored.
	in := ciphertext[:40] + "\n" + ciphertext[40:] + "\n"
	var out bytes.Buffer
	require.NoError(t, decrypt(&out, strings.NewReader(in), stream))
	require.Equal(t, plaintext, out.String())
}

func TestCommand(t *testing.T) {
	require.Equal(t, ciphertext+"\n", execute(t, plaintext))
	require.Equal(t, plaintext, execute(t, ciphertext, "-d"))
	require.Equal(t, "Hello", execute(t, execute(t, "Hello", "--key", "k3y"), "--decrypt", "--key", "k3y"))
}

func TestCommandKeyFromEnv(t *testing.T) {
	t.Setenv("CRYPTOPALS_KEY", "A")
	require.Equal(t, "0928\n", execute(t, "Hi"))

	t.Setenv("CRYPTOPALS_DECRYPT", "true")
	require.Equal(t, "Hi", execute(t, "0928"))
}

func TestCommandEmptyKey(t *testing.T) {
	cmd := newCommand()
	cmd.SetIn(strings.NewReader(plaintext))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--key", ""})
	require.ErrorIs(t, cmd.Execute(), xor.ErrEmptyKey)
}
