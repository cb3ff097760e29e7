package address

import (
	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/errors"
)

// DecodeAddress parses an address string and returns its destination.
func DecodeAddress(s string, params chainparams.PrefixLookup) (Destination, error) {
	a := New(params)
	if err := a.SetString(s); err != nil {
		return NoDestination{}, err
	}
	if !a.IsValid() {
		return NoDestination{}, errors.Prefix(s, ErrInvalidAddress)
	}
	return a.Get(), nil
}
