// Package codec converts between raw bytes and their hex and base64 text forms.
package codec

const hextable = "0123456789abcdef"

// wordDigits is the number of hex digits packed into one uint64.
const wordDigits = 16

// EncodeHex returns the lowercase hex encoding of buf.
func EncodeHex(buf []byte) string {
	dst := make([]byte, 2*len(buf))
	for i, b := range buf {
		dst[2*i] = hextable[b>>4]
		dst[2*i+1] = hextable[b&0x0f]
	}
	return string(dst)
}

// DecodeHex returns the bytes represented by a hex string of either case.
// If the length is odd, the leading digit is the low nibble of the first byte.
func DecodeHex(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if _, ok := fromHexChar(s[i]); !ok {
			return nil, ErrInvalidEncoding.Wrapf("byte %q at offset %d", s[i], i)
		}
	}
	res := make([]byte, 0, (len(s)+1)/2)

	// The remainder goes first so that every following word is full.
	offset := len(s) % wordDigits
	if offset > 0 {
		res = appendWord(res, packHex(s[:offset]), (offset+1)/2)
	}
	for ; offset < len(s); offset += wordDigits {
		res = appendWord(res, packHex(s[offset:offset+wordDigits]), wordDigits/2)
	}
	return res, nil
}

// packHex accumulates up to 16 validated hex digits into a big-endian word.
func packHex(s string) uint64 {
	var w uint64
	for i := 0; i < len(s); i++ {
		n, _ := fromHexChar(s[i])
		w = w<<4 | uint64(n)
	}
	return w
}

// appendWord appends the low n bytes of w, most significant first.
func appendWord(dst []byte, w uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(w>>(8*uint(i))))
	}
	return dst
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
