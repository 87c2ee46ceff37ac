package codec

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const pad = '='

// EncodeBase64 returns the padded standard base64 encoding of buf.
func EncodeBase64(buf []byte) string {
	dst := make([]byte, 0, (len(buf)+2)/3*4)
	for len(buf) >= 3 {
		w := uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
		dst = append(dst,
			alphabet[w>>18&0x3f],
			alphabet[w>>12&0x3f],
			alphabet[w>>6&0x3f],
			alphabet[w&0x3f],
		)
		buf = buf[3:]
	}
	switch len(buf) {
	case 1:
		w := uint32(buf[0]) << 16
		dst = append(dst, alphabet[w>>18&0x3f], alphabet[w>>12&0x3f], pad, pad)
	case 2:
		w := uint32(buf[0])<<16 | uint32(buf[1])<<8
		dst = append(dst, alphabet[w>>18&0x3f], alphabet[w>>12&0x3f], alphabet[w>>6&0x3f], pad)
	}
	return string(dst)
}

// DecodeBase64 returns the bytes represented by padded standard base64 text.
// Symbols outside the alphabet count as zero. Padding is recognized only at
// the end of the final group, where it shortens the output. A final group
// with more than two padding symbols, such as "====" or "A===", still yields
// one zero-valued byte rather than an error.
func DecodeBase64(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, ErrInvalidLength.Wrapf("length %d is not a multiple of 4", len(s))
	}
	res := make([]byte, 0, len(s)/4*3)
	for i := 0; i < len(s); i += 4 {
		var w uint32
		for j := 0; j < 4; j++ {
			w = w<<6 | fromBase64Char(s[i+j])
		}
		group := [3]byte{byte(w >> 16), byte(w >> 8), byte(w)}
		n := len(group)
		if i+4 == len(s) {
			n -= padding(s[i:])
		}
		res = append(res, group[:n]...)
	}
	return res, nil
}

// padding returns the number of padding symbols ending a 4-symbol group.
func padding(group string) int {
	if group[3] != pad {
		return 0
	}
	if group[2] != pad {
		return 1
	}
	return 2
}

func fromBase64Char(c byte) uint32 {
	switch {
	case 'A' <= c && c <= 'Z':
		return uint32(c - 'A')
	case 'a' <= c && c <= 'z':
		return uint32(c-'a') + 26
	case '0' <= c && c <= '9':
		return uint32(c-'0') + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	}
	return 0
}
