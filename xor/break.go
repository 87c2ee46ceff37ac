package xor

import (
	"math/bits"
	"sync"

	"cryptopals/english"
)

// Bounds on the key size tried by BreakRepeating.
const (
	MinKeySize = 2
	MaxKeySize = 40
)

// Candidate is a single-byte key together with the plaintext it produces.
type Candidate struct {
	Key       byte
	Plaintext []byte
	Score     float64
}

// BreakSingleByte tries every single-byte key and returns the best scoring one.
func BreakSingleByte(buf []byte, score func([]byte) float64) Candidate {
	var best Candidate
	// Don't modify the original data.
	tmp := make([]byte, len(buf))
	// Use an integer as the loop variable to avoid overflow.
	for i := 0; i <= 0xff; i++ {
		SingleByte(tmp, buf, byte(i))
		if n := score(tmp); i == 0 || n > best.Score {
			best.Key = byte(i)
			best.Score = n
		}
	}
	best.Plaintext = make([]byte, len(buf))
	SingleByte(best.Plaintext, buf, best.Key)

	return best
}

// Detect returns the index and candidate of the buffer most likely to be
// English encrypted with single-byte XOR.
func Detect(bufs [][]byte, score func([]byte) float64) (int, Candidate, error) {
	var best Candidate
	index := -1
	for i, buf := range bufs {
		c := BreakSingleByte(buf, score)
		if !english.IsEnglish(c.Plaintext) {
			continue
		}
		if index < 0 || c.Score > best.Score {
			index = i
			best = c
		}
	}
	if index < 0 {
		return -1, Candidate{}, ErrNotFound.Wrapf("no English among %d buffers", len(bufs))
	}
	return index, best, nil
}

// BreakRepeating returns the key used to encrypt a buffer with repeating XOR.
func BreakRepeating(buf []byte, score func([]byte) float64) ([]byte, error) {
	size, err := KeySize(buf, MinKeySize, MaxKeySize)
	if err != nil {
		return nil, err
	}
	cols, err := Transpose(Subdivide(buf, size))
	if err != nil {
		return nil, err
	}
	key := make([]byte, size)

	var wg sync.WaitGroup
	wg.Add(size)
	for i := range cols {
		go func(i int) {
			defer wg.Done()
			key[i] = BreakSingleByte(cols[i], score).Key
		}(i)
	}
	wg.Wait()

	return key, nil
}

// KeySize returns the block size in [lower, upper] with the smallest
// average Hamming distance between adjacent blocks.
func KeySize(buf []byte, lower, upper int) (int, error) {
	var n int
	var best float64
	for size := lower; size <= upper; size++ {
		distance, err := AverageDistance(buf, size)
		if err != nil {
			// The block size is too large, so stop.
			break
		}
		if n == 0 || distance < best {
			best = distance
			n = size
		}
	}
	if n == 0 {
		return 0, ErrTooShort.Wrapf("%d bytes, smallest key size %d", len(buf), lower)
	}
	return n, nil
}

// AverageDistance returns the average Hamming distance between adjacent
// blocks, normalized by the block size.
func AverageDistance(buf []byte, blockSize int) (float64, error) {
	blocks := Subdivide(buf, blockSize)
	if len(blocks) < 2 {
		return 0, ErrTooShort.Wrapf("need 2 or more blocks of size %d", blockSize)
	}
	var f float64
	for i := 0; i < len(blocks)-1; i++ {
		n := HammingDistance(blocks[i], blocks[i+1])
		f += float64(n) / float64(blockSize) / float64(len(blocks)-1)
	}
	return f, nil
}

// HammingDistance returns the number of differing bits between two buffers.
// Each byte by which the longer buffer exceeds the shorter counts as 8 bits.
func HammingDistance(b1, b2 []byte) int {
	short, long := b1, b2
	if len(short) > len(long) {
		short, long = long, short
	}
	var n int
	for i := range short {
		n += bits.OnesCount8(short[i] ^ long[i])
	}
	n += 8 * (len(long) - len(short))

	return n
}

// Subdivide divides a buffer into blocks, dropping a trailing partial block.
func Subdivide(buf []byte, blockSize int) [][]byte {
	if blockSize <= 0 {
		return nil
	}
	var blocks [][]byte
	for len(buf) >= blockSize {
		// Return pointers, not copies.
		blocks = append(blocks, buf[:blockSize])
		buf = buf[blockSize:]
	}
	return blocks
}

// Transpose takes equal-length buffers and returns buffers with the rows
// and columns swapped.
func Transpose(bufs [][]byte) ([][]byte, error) {
	if len(bufs) == 0 {
		return nil, ErrTooShort.Wrap("nothing to transpose")
	}
	for i := range bufs {
		if len(bufs[i]) != len(bufs[0]) {
			return nil, ErrLengthMismatch.Wrapf("block %d", i)
		}
	}
	res := make([][]byte, len(bufs[0]))
	for i := range res {
		res[i] = make([]byte, len(bufs))
		for j := range bufs {
			res[i][j] = bufs[j][i]
		}
	}
	return res, nil
}
