package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbryio/base58.go/address/base58"
	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/errors"
)

func TestInspect(t *testing.T) {
	info, err := Inspect("bUc9gyCJPKu2CBYpTvJ98MdmsLb68utjP6", chainparams.LbrycrdMain)
	require.NoError(t, err)
	assert.Equal(t, chainparams.PubKeyAddress, info.Type)
	assert.Equal(t, []byte{85}, info.Version)
	assert.Len(t, info.Payload, 20)

	info, err = Inspect("rN7U7zDxf13STDi2NScw4zhtA17zTogexA", chainparams.LbrycrdMain)
	require.NoError(t, err)
	assert.Equal(t, chainparams.ScriptAddress, info.Type)
	assert.IsType(t, ScriptID{}, info.Destination)

	info, err = Inspect("59Gce5qcjkNCkV26gGor4ycpSfMwQEUT1DDA4XYwVvVnmbVS9muC", chainparams.LbrycrdMain)
	require.NoError(t, err)
	assert.Equal(t, chainparams.SecretKey, info.Type)
	assert.True(t, info.Compressed)
	assert.Empty(t, info.Payload)
	assert.Equal(t, NoDestination{}, info.Destination)
}

func TestInspectErrors(t *testing.T) {
	_, err := Inspect("5ss7eJZAKipfTAsCb", chainparams.LbrycrdMain)
	assert.True(t, errors.Is(err, ErrUnrecognized), "%v", err)

	_, err = Inspect("5ss7eJZAKipfTAsCc", chainparams.LbrycrdMain)
	assert.True(t, errors.Is(err, base58.ErrChecksum), "%v", err)
}
