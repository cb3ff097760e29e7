package address

import (
	"bytes"

	"github.com/lbryio/base58.go/address/base58"
	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/cleanse"
)

// Address is a Base58Check encoded destination: a public key hash, a script hash or an extended
// public key. Extended private keys are never held by an Address; they are converted to their
// public form on the way in.
type Address struct {
	Data
	params chainparams.PrefixLookup
}

// New returns an empty address for the given network.
func New(params chainparams.PrefixLookup) *Address {
	return &Address{params: params}
}

// Set points the address at dest.
func (a *Address) Set(dest Destination) error {
	switch d := dest.(type) {
	case KeyID:
		a.SetData(a.params.Base58Prefix(chainparams.PubKeyAddress), d[:])
	case ScriptID:
		a.SetData(a.params.Base58Prefix(chainparams.ScriptAddress), d[:])
	case ExtKey:
		pub, err := d.Neuter()
		if err != nil {
			return err
		}
		a.SetData(a.params.Base58Prefix(chainparams.ExtPublicKey), pub.Bytes())
	default:
		return ErrNoDestination
	}
	return nil
}

// SetString parses s. The version length is chosen from the decoded size: a serialized extended
// key uses the 4-byte extended prefixes, anything else the public key hash prefix. SetString does
// not check that the result is a known address type; use IsValid or DecodeAddress for that.
func (a *Address) SetString(s string) error {
	decoded, err := base58.CheckDecode(s)
	if err != nil {
		a.Wipe()
		return err
	}

	versionLen := len(a.params.Base58Prefix(chainparams.PubKeyAddress))
	extPub := a.params.Base58Prefix(chainparams.ExtPublicKey)
	extSecret := a.params.Base58Prefix(chainparams.ExtSecretKey)

	switch {
	case isExtKey(decoded, extPub):
		versionLen = len(extPub)
	case isExtKey(decoded, extSecret):
		return a.setExtSecret(decoded, extPub, len(extSecret))
	}
	return a.setDecoded(decoded, versionLen)
}

func isExtKey(decoded, prefix []byte) bool {
	return len(prefix) > 0 && len(decoded) == len(prefix)+ExtKeyLength && bytes.HasPrefix(decoded, prefix)
}

func (a *Address) setExtSecret(decoded, extPub []byte, versionLen int) error {
	scratch := cleanse.From(decoded)
	defer scratch.Release()

	key, err := DecodeExtKey(decoded[versionLen:])
	defer key.Wipe()
	if err != nil {
		a.Wipe()
		return err
	}
	pub, err := key.Neuter()
	if err != nil {
		a.Wipe()
		return err
	}
	a.SetData(extPub, pub.Bytes())
	return nil
}

// Get returns the destination the address points at, or NoDestination if it is not valid.
func (a *Address) Get() Destination {
	if !a.IsValid() {
		return NoDestination{}
	}
	switch {
	case bytes.Equal(a.version, a.params.Base58Prefix(chainparams.PubKeyAddress)):
		var id KeyID
		copy(id[:], a.data)
		return id
	case bytes.Equal(a.version, a.params.Base58Prefix(chainparams.ScriptAddress)):
		var id ScriptID
		copy(id[:], a.data)
		return id
	default:
		key, err := DecodeExtKey(a.data)
		if err != nil {
			return NoDestination{}
		}
		return key
	}
}
