package base58

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/lbryio/base58.go/extras/cleanse"
	"github.com/lbryio/base58.go/extras/errors"
)

// ChecksumLength is the number of hash bytes appended by CheckEncode.
const ChecksumLength = 4

// ErrChecksum is returned when a check-encoded string is too short to hold a checksum or when
// its checksum does not match the payload.
var ErrChecksum = errors.Base("invalid base58 checksum")

// HashFunc is a single pass of the checksum hash. It must return at least ChecksumLength bytes.
type HashFunc func([]byte) []byte

// Codec is a Base58Check encoder over a given hash. The checksum is the first ChecksumLength
// bytes of hash(hash(payload)).
type Codec struct {
	hash HashFunc
}

// NewCodec returns a codec that checksums with hash applied twice.
func NewCodec(hash HashFunc) *Codec {
	return &Codec{hash: hash}
}

// DefaultCodec checksums with double SHA-256.
var DefaultCodec = NewCodec(chainhash.HashB)

// Checksum returns the checksum of b.
func (c *Codec) Checksum(b []byte) (sum [ChecksumLength]byte) {
	h := c.hash(c.hash(b))
	copy(sum[:], h[:ChecksumLength])
	return sum
}

// VerifyChecksum reports whether the last ChecksumLength bytes of v are the checksum of the
// bytes before them.
func (c *Codec) VerifyChecksum(v []byte) bool {
	if len(v) < ChecksumLength {
		return false
	}
	var sum [ChecksumLength]byte
	copy(sum[:], v[len(v)-ChecksumLength:])
	return c.Checksum(v[:len(v)-ChecksumLength]) == sum
}

// CheckEncode appends the checksum of b and base58-encodes the result.
func (c *Codec) CheckEncode(b []byte) string {
	buf := make([]byte, len(b), len(b)+ChecksumLength)
	copy(buf, b)
	defer cleanse.Memory(buf)

	sum := c.Checksum(b)
	buf = append(buf, sum[:]...)
	return Encode(buf)
}

// CheckDecode decodes s and verifies its trailing checksum, returning the payload without it.
// A string that does not decode fails with ErrFormat; anything else fails with ErrChecksum.
func (c *Codec) CheckDecode(s string) ([]byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < ChecksumLength {
		cleanse.Memory(decoded)
		return nil, errors.Prefix("too short", ErrChecksum)
	}
	if !c.VerifyChecksum(decoded) {
		cleanse.Memory(decoded)
		return nil, errors.Prefix("mismatch", ErrChecksum)
	}
	return decoded[:len(decoded)-ChecksumLength], nil
}

// Checksum returns the double SHA-256 checksum of b.
func Checksum(b []byte) [ChecksumLength]byte {
	return DefaultCodec.Checksum(b)
}

// VerifyChecksum checks a trailing double SHA-256 checksum.
func VerifyChecksum(v []byte) bool {
	return DefaultCodec.VerifyChecksum(v)
}

// CheckEncode encodes b with a double SHA-256 checksum.
func CheckEncode(b []byte) string {
	return DefaultCodec.CheckEncode(b)
}

// CheckDecode decodes a string produced by CheckEncode.
func CheckDecode(s string) ([]byte, error) {
	return DefaultCodec.CheckDecode(s)
}
