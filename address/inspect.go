package address

import (
	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/errors"
)

var ErrUnrecognized = errors.Base("not an address or secret key")

// Info describes a string recognized by Inspect. Payload is left empty for secret keys.
type Info struct {
	Type        chainparams.Base58Type
	Version     []byte
	Payload     []byte
	Compressed  bool
	Destination Destination
}

// Inspect recognizes s as an address or a secret key on the given network. Encoding errors are
// returned as is; strings that decode but match neither fail with ErrUnrecognized.
func Inspect(s string, params chainparams.PrefixLookup) (*Info, error) {
	a := New(params)
	if err := a.SetString(s); err != nil {
		return nil, err
	}
	if a.IsValid() {
		info := &Info{Version: a.Version(), Payload: a.Payload(), Destination: a.Get()}
		switch info.Destination.(type) {
		case KeyID:
			info.Type = chainparams.PubKeyAddress
		case ScriptID:
			info.Type = chainparams.ScriptAddress
		case ExtKey:
			info.Type = chainparams.ExtPublicKey
		}
		return info, nil
	}
	a.Wipe()

	secret := NewSecret(params)
	defer secret.Wipe()
	if err := secret.SetString(s); err == nil {
		_, compressed, _ := secret.Key()
		return &Info{
			Type:        chainparams.SecretKey,
			Version:     secret.Version(),
			Compressed:  compressed,
			Destination: NoDestination{},
		}, nil
	}
	return nil, errors.Prefix(s, ErrUnrecognized)
}
