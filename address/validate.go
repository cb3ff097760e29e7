package address

import (
	"bytes"

	"golang.org/x/crypto/ripemd160"

	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/errors"
)

var (
	ErrNoDestination  = errors.Base("no destination")
	ErrInvalidAddress = errors.Base("invalid address")
)

// IsValid reports whether the address holds a 20-byte hash under the public key hash or script
// hash prefix, or an extended public key under the extended public prefix.
func (a *Address) IsValid() bool {
	if len(a.version) == 0 && len(a.data) == 0 {
		return false
	}
	switch {
	case bytes.Equal(a.version, a.params.Base58Prefix(chainparams.PubKeyAddress)),
		bytes.Equal(a.version, a.params.Base58Prefix(chainparams.ScriptAddress)):
		return len(a.data) == ripemd160.Size
	case bytes.Equal(a.version, a.params.Base58Prefix(chainparams.ExtPublicKey)):
		if len(a.data) != ExtKeyLength {
			return false
		}
		key, err := DecodeExtKey(a.data)
		return err == nil && !key.IsPrivate()
	}
	return false
}

// ValidateAddress checks that s is a well-formed address on the given network.
func ValidateAddress(s string, params chainparams.PrefixLookup) error {
	a := New(params)
	if err := a.SetString(s); err != nil {
		return err
	}
	if !a.IsValid() {
		return errors.Prefix(s, ErrInvalidAddress)
	}
	return nil
}
