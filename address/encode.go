package address

import (
	"github.com/lbryio/base58.go/chainparams"
)

// EncodeAddress returns the string form of dest on the given network.
func EncodeAddress(dest Destination, params chainparams.PrefixLookup) (string, error) {
	a := New(params)
	if err := a.Set(dest); err != nil {
		return "", err
	}
	return a.String(), nil
}
