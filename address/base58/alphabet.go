package base58

// Alphabet is the modified base58 alphabet: all alphanumeric characters except for "0", "I",
// "O" and "l".
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	radix   = 58
	invalid = 0xFF
)

// alphabetIdx maps an ASCII byte to its digit value, or invalid. Built once, never written.
var alphabetIdx = func() [256]byte {
	var idx [256]byte
	for i := range idx {
		idx[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		idx[Alphabet[i]] = byte(i)
	}
	return idx
}()

// CharacterIndex returns the digit value of c, or false if c is not part of the alphabet.
func CharacterIndex(c byte) (byte, bool) {
	v := alphabetIdx[c]
	return v, v != invalid
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
