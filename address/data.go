package address

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/lbryio/base58.go/address/base58"
	"github.com/lbryio/base58.go/extras/cleanse"
	"github.com/lbryio/base58.go/extras/errors"
)

// ErrPrefixLength is returned when a decoded string is shorter than the version prefix it is
// supposed to start with.
var ErrPrefixLength = errors.Base("payload shorter than version prefix")

// Data is a version prefix followed by a payload, serialized as Base58Check. The zero value is
// empty and ready to use. Data is a plain value: it is not safe to mutate one from several
// goroutines at once.
type Data struct {
	version []byte
	data    []byte
}

// SetData copies version and payload into d.
func (d *Data) SetData(version, payload []byte) {
	d.version = append([]byte(nil), version...)
	d.data = append([]byte(nil), payload...)
}

// SetString parses a Base58Check string whose first versionLen bytes are the version prefix.
// On any error d is left empty.
func (d *Data) SetString(s string, versionLen int) error {
	decoded, err := base58.CheckDecode(s)
	if err != nil {
		d.Wipe()
		return err
	}
	return d.setDecoded(decoded, versionLen)
}

// setDecoded splits decoded into version and payload and zeroes decoded before returning.
func (d *Data) setDecoded(decoded []byte, versionLen int) error {
	scratch := cleanse.From(decoded)
	defer scratch.Release()

	if versionLen < 0 || len(decoded) < versionLen {
		d.Wipe()
		return errors.Prefix(fmt.Sprintf("got %d bytes, want at least %d", len(decoded), versionLen), ErrPrefixLength)
	}
	d.SetData(decoded[:versionLen], decoded[versionLen:])
	return nil
}

// String returns the Base58Check encoding of version ++ payload.
func (d *Data) String() string {
	buf := make([]byte, 0, len(d.version)+len(d.data))
	buf = append(buf, d.version...)
	buf = append(buf, d.data...)
	defer cleanse.Memory(buf)
	return base58.CheckEncode(buf)
}

// Version returns a copy of the version prefix.
func (d *Data) Version() []byte {
	return append([]byte(nil), d.version...)
}

// Payload returns a copy of the payload.
func (d *Data) Payload() []byte {
	return append([]byte(nil), d.data...)
}

// IsEmpty reports whether d holds neither a version nor a payload.
func (d *Data) IsEmpty() bool {
	return len(d.version) == 0 && len(d.data) == 0
}

// Wipe zeroes the payload and version and empties d.
func (d *Data) Wipe() {
	cleanse.Memory(d.version)
	cleanse.Memory(d.data)
	d.version = nil
	d.data = nil
}

// Compare orders by version, then by payload, byte-wise. It returns -1, 0 or 1.
func (d *Data) Compare(o *Data) int {
	if c := bytes.Compare(d.version, o.version); c != 0 {
		return c
	}
	return bytes.Compare(d.data, o.data)
}

// Equal reports whether d and o hold the same version and payload.
func (d *Data) Equal(o *Data) bool {
	return d.Compare(o) == 0
}

// SortData sorts ds in Compare order.
func SortData(ds []*Data) {
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Compare(ds[j]) < 0 })
}
