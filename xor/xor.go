// Package xor implements XOR ciphers and the attacks on them.
package xor

import "crypto/cipher"

// Bytes produces the XOR combination of two buffers over the shorter length,
// and returns the number of bytes written.
func Bytes(dst, b1, b2 []byte) int {
	n := min(len(b1), len(b2))
	for i := 0; i < n; i++ {
		dst[i] = b1[i] ^ b2[i]
	}
	return n
}

// Fixed returns the XOR combination of two equal-length buffers.
func Fixed(b1, b2 []byte) ([]byte, error) {
	if len(b1) != len(b2) {
		return nil, ErrLengthMismatch.Wrapf("%d != %d", len(b1), len(b2))
	}
	res := make([]byte, len(b1))
	Bytes(res, b1, b2)
	return res, nil
}

// SingleByte produces the XOR combination of a buffer with a single byte.
func SingleByte(dst, src []byte, b byte) {
	// Panic if dst is smaller than src.
	for i := range src {
		dst[i] = src[i] ^ b
	}
}

// repeating is a repeating-key XOR stream cipher.
type repeating struct {
	key []byte
	pos int
}

// NewCipher creates a new repeating-key XOR cipher.
// The key is copied. The returned stream is not safe for concurrent use.
func NewCipher(key []byte) (cipher.Stream, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &repeating{key: append([]byte(nil), key...)}, nil
}

// XORKeyStream encrypts or decrypts a buffer with repeating XOR.
func (x *repeating) XORKeyStream(dst, src []byte) {
	// Panic if dst is smaller than src.
	for i := range src {
		dst[i] = src[i] ^ x.key[x.pos]
		x.pos++
		if x.pos == len(x.key) {
			x.pos = 0
		}
	}
}
