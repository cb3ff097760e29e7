package address

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil/hdkeychain"
	"golang.org/x/crypto/ripemd160"

	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/cleanse"
	"github.com/lbryio/base58.go/extras/errors"
)

// Destination is what an address points at: a KeyID, a ScriptID, an ExtKey or NoDestination.
type Destination interface {
	isDestination()
}

// NoDestination is returned for data that is not a valid address.
type NoDestination struct{}

// KeyID is the RIPEMD-160 of the SHA-256 of a serialized public key.
type KeyID [ripemd160.Size]byte

// ScriptID is the RIPEMD-160 of the SHA-256 of a serialized redeem script.
type ScriptID [ripemd160.Size]byte

func (NoDestination) isDestination() {}
func (KeyID) isDestination()         {}
func (ScriptID) isDestination()      {}
func (ExtKey) isDestination()        {}

func hash160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(chainhash.HashB(b))
	return h.Sum(nil)
}

// NewKeyID hashes a serialized public key.
func NewKeyID(pubKey []byte) KeyID {
	var id KeyID
	copy(id[:], hash160(pubKey))
	return id
}

// NewScriptID hashes a serialized script.
func NewScriptID(script []byte) ScriptID {
	var id ScriptID
	copy(id[:], hash160(script))
	return id
}

// ExtKeyLength is the size of a serialized BIP32 key without its 4 version bytes.
const ExtKeyLength = 74

var ErrExtKey = errors.Base("invalid extended key")

// ExtKey is a BIP32 extended key body. Key is a 33-byte compressed public key, or 0x00 followed
// by a 32-byte private key.
type ExtKey struct {
	Depth     uint8
	ParentFP  [4]byte
	ChildNum  uint32
	ChainCode [32]byte
	Key       [33]byte
}

// DecodeExtKey parses the 74-byte body of a serialized extended key.
func DecodeExtKey(b []byte) (ExtKey, error) {
	var k ExtKey
	if len(b) != ExtKeyLength {
		return k, errors.Prefix("wrong length", ErrExtKey)
	}
	k.Depth = b[0]
	copy(k.ParentFP[:], b[1:5])
	k.ChildNum = binary.BigEndian.Uint32(b[5:9])
	copy(k.ChainCode[:], b[9:41])
	copy(k.Key[:], b[41:74])
	if k.Key[0] != 0x00 && k.Key[0] != 0x02 && k.Key[0] != 0x03 {
		return ExtKey{}, errors.Prefix("bad key marker", ErrExtKey)
	}
	return k, nil
}

// Bytes serializes k into its 74-byte body.
func (k ExtKey) Bytes() []byte {
	b := make([]byte, ExtKeyLength)
	b[0] = k.Depth
	copy(b[1:5], k.ParentFP[:])
	binary.BigEndian.PutUint32(b[5:9], k.ChildNum)
	copy(b[9:41], k.ChainCode[:])
	copy(b[41:74], k.Key[:])
	return b
}

// IsPrivate reports whether k carries a private key.
func (k ExtKey) IsPrivate() bool {
	return k.Key[0] == 0x00
}

// Neuter returns the public half of k. Public keys are returned unchanged.
func (k ExtKey) Neuter() (ExtKey, error) {
	if !k.IsPrivate() {
		return k, nil
	}
	priv := cleanse.New(32)
	defer priv.Release()
	copy(priv.Bytes(), k.Key[1:])

	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), priv.Bytes())
	if pub == nil || pub.X.Sign() == 0 {
		return ExtKey{}, errors.Prefix("zero private key", ErrExtKey)
	}

	pubKey := k
	copy(pubKey.Key[:], pub.SerializeCompressed())
	return pubKey, nil
}

// Wipe zeroes the key material.
func (k *ExtKey) Wipe() {
	cleanse.Memory(k.Key[:])
	cleanse.Memory(k.ChainCode[:])
}

// HDKey returns k as a btcutil extended key using the extended key prefixes of params.
func (k ExtKey) HDKey(params chainparams.PrefixLookup) *hdkeychain.ExtendedKey {
	version := params.Base58Prefix(chainparams.ExtPublicKey)
	key := k.Key[:]
	if k.IsPrivate() {
		version = params.Base58Prefix(chainparams.ExtSecretKey)
		key = k.Key[1:]
	}
	return hdkeychain.NewExtendedKey(version, append([]byte(nil), key...), k.ChainCode[:], k.ParentFP[:], k.Depth, k.ChildNum, k.IsPrivate())
}
