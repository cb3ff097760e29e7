package chainparams

import (
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/lbryio/base58.go/extras/errors"
)

// Base58Type tags the kind of payload a version prefix introduces.
type Base58Type int

const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey

	numBase58Types
)

var base58TypeNames = [numBase58Types]string{
	PubKeyAddress: "pubkey_address",
	ScriptAddress: "script_address",
	SecretKey:     "secret_key",
	ExtPublicKey:  "ext_public_key",
	ExtSecretKey:  "ext_secret_key",
}

func (t Base58Type) String() string {
	if t < 0 || t >= numBase58Types {
		return "unknown"
	}
	return base58TypeNames[t]
}

// Base58Types lists every prefix kind, in declaration order.
func Base58Types() []Base58Type {
	types := make([]Base58Type, numBase58Types)
	for i := range types {
		types[i] = Base58Type(i)
	}
	return types
}

// PrefixLookup returns the version prefix used for a payload kind.
type PrefixLookup interface {
	Base58Prefix(t Base58Type) []byte
}

var (
	ErrUnknownNetwork = errors.Base("unknown network")
	ErrInvalidPrefix  = errors.Base("invalid version prefix")
)

// Params is a named table of version prefixes.
type Params struct {
	Name     string
	prefixes [numBase58Types][]byte
}

// NewParams builds a prefix table. Kinds missing from prefixes get an empty prefix.
func NewParams(name string, prefixes map[Base58Type][]byte) *Params {
	p := &Params{Name: name}
	for t, prefix := range prefixes {
		if t < 0 || t >= numBase58Types {
			continue
		}
		p.prefixes[t] = append([]byte(nil), prefix...)
	}
	return p
}

// FromChaincfg adapts a btcd network definition.
func FromChaincfg(name string, net *chaincfg.Params) *Params {
	return NewParams(name, map[Base58Type][]byte{
		PubKeyAddress: {net.PubKeyHashAddrID},
		ScriptAddress: {net.ScriptHashAddrID},
		SecretKey:     {net.PrivateKeyID},
		ExtPublicKey:  net.HDPublicKeyID[:],
		ExtSecretKey:  net.HDPrivateKeyID[:],
	})
}

// Base58Prefix returns a copy of the prefix for t, or nil if t is unknown.
func (p *Params) Base58Prefix(t Base58Type) []byte {
	if t < 0 || t >= numBase58Types {
		return nil
	}
	return append([]byte(nil), p.prefixes[t]...)
}

// Chaincfg converts the table into btcd network parameters so it can be handed to btcutil.
// Address and secret prefixes must be one byte and extended key prefixes four.
func (p *Params) Chaincfg() (*chaincfg.Params, error) {
	for _, t := range []Base58Type{PubKeyAddress, ScriptAddress, SecretKey} {
		if len(p.prefixes[t]) != 1 {
			return nil, errors.Prefix(p.Name+" "+t.String(), ErrInvalidPrefix)
		}
	}
	for _, t := range []Base58Type{ExtPublicKey, ExtSecretKey} {
		if len(p.prefixes[t]) != 4 {
			return nil, errors.Prefix(p.Name+" "+t.String(), ErrInvalidPrefix)
		}
	}

	net := &chaincfg.Params{
		Name:             p.Name,
		PubKeyHashAddrID: p.prefixes[PubKeyAddress][0],
		ScriptHashAddrID: p.prefixes[ScriptAddress][0],
		PrivateKeyID:     p.prefixes[SecretKey][0],
	}
	copy(net.HDPublicKeyID[:], p.prefixes[ExtPublicKey])
	copy(net.HDPrivateKeyID[:], p.prefixes[ExtSecretKey])
	return net, nil
}
