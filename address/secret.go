package address

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec"

	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/cleanse"
	"github.com/lbryio/base58.go/extras/errors"
)

const (
	secretKeyLength = 32
	compressedFlag  = 0x01
)

var ErrInvalidSecret = errors.Base("invalid secret key")

// Secret is a private key in wallet import format: the secret key prefix, the 32-byte key and,
// for keys whose public key is serialized compressed, a trailing 0x01.
type Secret struct {
	Data
	params chainparams.PrefixLookup
}

// NewSecret returns an empty secret for the given network.
func NewSecret(params chainparams.PrefixLookup) *Secret {
	return &Secret{params: params}
}

// SetKey stores key.
func (s *Secret) SetKey(key *btcec.PrivateKey, compressed bool) {
	serialized := key.Serialize()
	defer cleanse.Memory(serialized)

	payload := cleanse.New(secretKeyLength + 1)
	defer payload.Release()
	b := payload.Bytes()
	copy(b[secretKeyLength-len(serialized):], serialized)
	if compressed {
		b[secretKeyLength] = compressedFlag
	} else {
		b = b[:secretKeyLength]
	}

	s.SetData(s.params.Base58Prefix(chainparams.SecretKey), b)
}

// Key returns the private key and whether its public key is compressed.
func (s *Secret) Key() (*btcec.PrivateKey, bool, error) {
	if !s.IsValid() {
		return nil, false, ErrInvalidSecret
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), s.data[:secretKeyLength])
	return priv, len(s.data) > secretKeyLength, nil
}

// IsValid reports whether s holds a key under the secret key prefix.
func (s *Secret) IsValid() bool {
	if !bytes.Equal(s.version, s.params.Base58Prefix(chainparams.SecretKey)) {
		return false
	}
	switch len(s.data) {
	case secretKeyLength:
		return true
	case secretKeyLength + 1:
		return s.data[secretKeyLength] == compressedFlag
	}
	return false
}

// SetString parses a wallet import format string. On error s is left empty.
func (s *Secret) SetString(str string) error {
	if err := s.Data.SetString(str, len(s.params.Base58Prefix(chainparams.SecretKey))); err != nil {
		return err
	}
	if !s.IsValid() {
		s.Wipe()
		return ErrInvalidSecret
	}
	return nil
}
