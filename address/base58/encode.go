package base58

import (
	"github.com/lbryio/base58.go/extras/errors"
)

// Encode encodes b in base58. Each leading zero byte is written as a leading '1', since zeros
// have no positional value. An empty slice encodes to an empty string.
func Encode(b []byte) string {
	zeroes := 0
	for zeroes < len(b) && b[zeroes] == 0 {
		zeroes++
	}
	b = b[zeroes:]

	// log(256) / log(58), rounded up.
	size := len(b)*138/100 + 1
	b58 := make([]byte, size)
	length := 0
	for _, c := range b {
		// b58 = b58 * 256 + c
		carry := int(c)
		i := 0
		for j := size - 1; (carry != 0 || i < length) && j >= 0; j-- {
			carry += 256 * int(b58[j])
			b58[j] = byte(carry % radix)
			carry /= radix
			i++
		}
		if carry != 0 {
			panic(errors.Err("base58: residual carry %d while encoding", carry))
		}
		length = i
	}

	it := size - length
	for it < size && b58[it] == 0 {
		it++
	}

	out := make([]byte, zeroes+size-it)
	for i := 0; i < zeroes; i++ {
		out[i] = Alphabet[0]
	}
	for i, d := range b58[it:] {
		out[zeroes+i] = Alphabet[d]
	}
	return string(out)
}
