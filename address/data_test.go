package address

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbryio/base58.go/address/base58"
	"github.com/lbryio/base58.go/extras/errors"
)

func TestDataSerialize(t *testing.T) {
	var d Data
	d.SetData([]byte{0x01, 0x02}, []byte("payload"))
	assert.Equal(t, "5ss7eJZAKipfTAsCb", d.String())

	d.SetData([]byte{0x55}, nil)
	assert.Equal(t, "AfXKDqf", d.String())

	d.SetData(nil, nil)
	assert.Equal(t, "3QJmnh", d.String())
}

func TestDataSetString(t *testing.T) {
	var d Data
	require.NoError(t, d.SetString("5ss7eJZAKipfTAsCb", 2))
	assert.Equal(t, []byte{0x01, 0x02}, d.Version())
	assert.Equal(t, []byte("payload"), d.Payload())
	assert.Equal(t, "5ss7eJZAKipfTAsCb", d.String())

	require.NoError(t, d.SetString("5ss7eJZAKipfTAsCb", 1))
	assert.Equal(t, []byte{0x01}, d.Version())
	assert.Equal(t, append([]byte{0x02}, "payload"...), d.Payload())
	assert.Equal(t, "5ss7eJZAKipfTAsCb", d.String())
}

func TestDataEmptyParts(t *testing.T) {
	var d Data
	require.NoError(t, d.SetString("AfXKDqf", 1))
	assert.Equal(t, []byte{0x55}, d.Version())
	assert.Empty(t, d.Payload())

	require.NoError(t, d.SetString("WAJ3Feu", 0))
	assert.Empty(t, d.Version())
	assert.Equal(t, []byte{0x01, 0x02}, d.Payload())

	require.NoError(t, d.SetString("3QJmnh", 0))
	assert.True(t, d.IsEmpty())
}

func TestDataPrefixLength(t *testing.T) {
	var d Data
	d.SetData([]byte{9}, []byte{9})

	err := d.SetString("AfXKDqf", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrefixLength), err.Error())
	assert.True(t, d.IsEmpty())

	err = d.SetString("AfXKDqf", -1)
	assert.True(t, errors.Is(err, ErrPrefixLength))
}

func TestDataCorruptedLastCharacter(t *testing.T) {
	const valid = "bUc9gyCJPKu2CBYpTvJ98MdmsLb68utjP6"
	last := valid[len(valid)-1]
	replacement := "7"
	if last == '7' {
		replacement = "8"
	}
	corrupted := valid[:len(valid)-1] + replacement

	var d Data
	require.NoError(t, d.SetString(valid, 1))
	require.False(t, d.IsEmpty())

	err := d.SetString(corrupted, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, base58.ErrChecksum))
	assert.Empty(t, d.Version())
	assert.Empty(t, d.Payload())
}

func TestDataFormatError(t *testing.T) {
	var d Data
	d.SetData([]byte{1}, []byte{2})
	err := d.SetString("5ss7eJZAKipfTAsC0", 1)
	assert.True(t, errors.Is(err, base58.ErrFormat))
	assert.True(t, d.IsEmpty())
}

func TestDataAccessorsCopy(t *testing.T) {
	var d Data
	version := []byte{1}
	payload := []byte{2, 3}
	d.SetData(version, payload)
	version[0] = 9
	payload[0] = 9
	assert.Equal(t, []byte{1}, d.Version())
	assert.Equal(t, []byte{2, 3}, d.Payload())

	d.Version()[0] = 7
	d.Payload()[0] = 7
	assert.Equal(t, []byte{1}, d.Version())
	assert.Equal(t, []byte{2, 3}, d.Payload())
}

func TestDataScratchIsWiped(t *testing.T) {
	decoded := []byte{0x1c, 0xde, 0xad, 0xbe, 0xef}
	var d Data
	require.NoError(t, d.setDecoded(decoded, 1))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, d.Payload())
	assert.Equal(t, make([]byte, 5), decoded)

	decoded = []byte{0x1c, 0xde}
	require.Error(t, d.setDecoded(decoded, 3))
	assert.Equal(t, make([]byte, 2), decoded)
}

func TestDataWipe(t *testing.T) {
	var d Data
	d.SetData([]byte{1}, []byte("secret"))
	payload := d.data
	d.Wipe()
	assert.True(t, d.IsEmpty())
	assert.Equal(t, make([]byte, 6), payload)
}

func TestDataOrdering(t *testing.T) {
	mk := func(version, payload string) *Data {
		d := &Data{}
		d.SetData([]byte(version), []byte(payload))
		return d
	}

	low := mk("\x01", "\xff\xff\xff")
	high := mk("\x02", "")
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))

	assert.Equal(t, -1, mk("\x01", "a").Compare(mk("\x01", "b")))
	assert.Equal(t, -1, mk("\x01", "a").Compare(mk("\x01", "ab")))
	assert.Equal(t, -1, mk("\x01", "zzz").Compare(mk("\x01\x00", "")))
	assert.Equal(t, 0, mk("\x01", "a").Compare(mk("\x01", "a")))
	assert.True(t, mk("\x01", "a").Equal(mk("\x01", "a")))
	assert.False(t, mk("\x01", "a").Equal(mk("\x02", "a")))
	assert.True(t, (&Data{}).Equal(mk("", "")))

	ds := []*Data{mk("\x02", "a"), mk("\x01", "z"), mk("\x02", ""), mk("\x01", "a")}
	SortData(ds)
	var got []string
	for _, d := range ds {
		got = append(got, string(d.Version())+"/"+string(d.Payload()))
	}
	assert.Equal(t, []string{"\x01/a", "\x01/z", "\x02/", "\x02/a"}, got)
}

func TestDataRoundTrip(t *testing.T) {
	for versionLen := 0; versionLen < 5; versionLen++ {
		for n := 0; n < 40; n += 7 {
			var in, out Data
			in.SetData(bytes.Repeat([]byte{0}, versionLen), []byte(strings.Repeat("x", n)))
			require.NoError(t, out.SetString(in.String(), versionLen))
			assert.True(t, in.Equal(&out))
		}
	}
}
