package chainparams

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"gotest.tools/assert"

	"github.com/lbryio/base58.go/extras/errors"
)

func TestLbrycrdMainPrefixes(t *testing.T) {
	assert.DeepEqual(t, []byte{85}, LbrycrdMain.Base58Prefix(PubKeyAddress))
	assert.DeepEqual(t, []byte{122}, LbrycrdMain.Base58Prefix(ScriptAddress))
	assert.DeepEqual(t, []byte{28}, LbrycrdMain.Base58Prefix(SecretKey))
	assert.DeepEqual(t, []byte{0x04, 0x88, 0xB2, 0x1E}, LbrycrdMain.Base58Prefix(ExtPublicKey))
	assert.DeepEqual(t, []byte{0x04, 0x88, 0xAD, 0xE4}, LbrycrdMain.Base58Prefix(ExtSecretKey))
	assert.Assert(t, LbrycrdMain.Base58Prefix(Base58Type(42)) == nil)
}

func TestBase58PrefixReturnsCopy(t *testing.T) {
	prefix := LbrycrdTestnet.Base58Prefix(PubKeyAddress)
	prefix[0] = 0
	assert.DeepEqual(t, []byte{111}, LbrycrdTestnet.Base58Prefix(PubKeyAddress))
}

func TestFromChaincfg(t *testing.T) {
	net := &chaincfg.MainNetParams
	assert.DeepEqual(t, []byte{net.PubKeyHashAddrID}, BitcoinMain.Base58Prefix(PubKeyAddress))
	assert.DeepEqual(t, []byte{net.ScriptHashAddrID}, BitcoinMain.Base58Prefix(ScriptAddress))
	assert.DeepEqual(t, []byte{net.PrivateKeyID}, BitcoinMain.Base58Prefix(SecretKey))
	assert.DeepEqual(t, net.HDPublicKeyID[:], BitcoinMain.Base58Prefix(ExtPublicKey))
	assert.DeepEqual(t, net.HDPrivateKeyID[:], BitcoinMain.Base58Prefix(ExtSecretKey))
}

func TestChaincfgRoundTrip(t *testing.T) {
	net, err := LbrycrdMain.Chaincfg()
	assert.NilError(t, err)
	assert.Equal(t, lbrycrdMain, net.Name)
	assert.Equal(t, byte(0x55), net.PubKeyHashAddrID)
	assert.Equal(t, byte(0x7a), net.ScriptHashAddrID)
	assert.Equal(t, byte(0x1c), net.PrivateKeyID)
	assert.Equal(t, [4]byte{0x04, 0x88, 0xB2, 0x1E}, net.HDPublicKeyID)
	assert.Equal(t, [4]byte{0x04, 0x88, 0xAD, 0xE4}, net.HDPrivateKeyID)

	back := FromChaincfg(lbrycrdMain, net)
	for _, typ := range Base58Types() {
		assert.DeepEqual(t, LbrycrdMain.Base58Prefix(typ), back.Base58Prefix(typ))
	}
}

func TestChaincfgRejectsWidePrefixes(t *testing.T) {
	p := NewParams("wide", map[Base58Type][]byte{
		PubKeyAddress: {0x1c, 0xb8},
		ScriptAddress: {0x1c, 0xbd},
		SecretKey:     {0x80},
	})
	_, err := p.Chaincfg()
	assert.Assert(t, errors.Is(err, ErrInvalidPrefix))
}

func TestByName(t *testing.T) {
	p, err := ByName("lbrycrd_regtest")
	assert.NilError(t, err)
	assert.Equal(t, LbrycrdRegtest, p)

	_, err = ByName("dogecoin")
	assert.Assert(t, errors.Is(err, ErrUnknownNetwork))

	assert.DeepEqual(t, []string{
		"bitcoin_main", "bitcoin_regtest", "bitcoin_testnet",
		"lbrycrd_main", "lbrycrd_regtest", "lbrycrd_testnet",
	}, Names())
}

func TestBase58TypeString(t *testing.T) {
	assert.Equal(t, "pubkey_address", PubKeyAddress.String())
	assert.Equal(t, "ext_secret_key", ExtSecretKey.String())
	assert.Equal(t, "unknown", Base58Type(-1).String())
	assert.Equal(t, 5, len(Base58Types()))
}
