package base58

import (
	"fmt"

	"github.com/lbryio/base58.go/extras/cleanse"
	"github.com/lbryio/base58.go/extras/errors"
)

// ErrFormat is returned when a string contains a character outside the alphabet anywhere other
// than in trailing whitespace.
var ErrFormat = errors.Base("invalid base58 string")

// Decode decodes a base58 string. Leading and trailing ASCII whitespace is ignored, and each
// leading '1' becomes a leading zero byte. Decoding an empty string yields an empty slice.
func Decode(s string) ([]byte, error) {
	p := 0
	for p < len(s) && isSpace(s[p]) {
		p++
	}
	zeroes := 0
	for p < len(s) && s[p] == Alphabet[0] {
		zeroes++
		p++
	}

	// log(58) / log(256), rounded up.
	size := (len(s)-p)*733/1000 + 1
	scratch := cleanse.New(size)
	defer scratch.Release()
	b256 := scratch.Bytes()

	length := 0
	for ; p < len(s); p++ {
		v, ok := CharacterIndex(s[p])
		if !ok {
			break
		}
		// b256 = b256 * 58 + v
		carry := int(v)
		i := 0
		for j := size - 1; (carry != 0 || i < length) && j >= 0; j-- {
			carry += radix * int(b256[j])
			b256[j] = byte(carry % 256)
			carry /= 256
			i++
		}
		if carry != 0 {
			panic(errors.Err("base58: residual carry %d while decoding", carry))
		}
		length = i
	}

	if p < len(s) {
		bad := p
		for p < len(s) && isSpace(s[p]) {
			p++
		}
		if p != len(s) {
			return nil, errors.Prefix(fmt.Sprintf("unexpected %q at offset %d", s[bad], bad), ErrFormat)
		}
	}

	it := size - length
	for it < size && b256[it] == 0 {
		it++
	}

	out := make([]byte, zeroes+size-it)
	copy(out[zeroes:], b256[it:])
	return out, nil
}
