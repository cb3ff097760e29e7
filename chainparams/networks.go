package chainparams

import (
	"sort"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/lbryio/base58.go/extras/errors"
)

const (
	lbrycrdMain    = "lbrycrd_main"
	lbrycrdTestnet = "lbrycrd_testnet"
	lbrycrdRegtest = "lbrycrd_regtest"

	bitcoinMain    = "bitcoin_main"
	bitcoinTestnet = "bitcoin_testnet"
	bitcoinRegtest = "bitcoin_regtest"
)

// LbrycrdMain are the lbrycrd mainnet prefixes. See https://github.com/lbryio/lbrycrd/blob/master/src/chainparams.cpp
var LbrycrdMain = NewParams(lbrycrdMain, map[Base58Type][]byte{
	PubKeyAddress: {85},
	ScriptAddress: {122},
	SecretKey:     {28},
	ExtPublicKey:  {0x04, 0x88, 0xB2, 0x1E},
	ExtSecretKey:  {0x04, 0x88, 0xAD, 0xE4},
})

var LbrycrdTestnet = NewParams(lbrycrdTestnet, map[Base58Type][]byte{
	PubKeyAddress: {111},
	ScriptAddress: {196},
	SecretKey:     {239},
	ExtPublicKey:  {0x04, 0x35, 0x87, 0xCF},
	ExtSecretKey:  {0x04, 0x35, 0x83, 0x94},
})

var LbrycrdRegtest = NewParams(lbrycrdRegtest, map[Base58Type][]byte{
	PubKeyAddress: {111},
	ScriptAddress: {196},
	SecretKey:     {239},
	ExtPublicKey:  {0x04, 0x35, 0x87, 0xCF},
	ExtSecretKey:  {0x04, 0x35, 0x83, 0x94},
})

var (
	BitcoinMain    = FromChaincfg(bitcoinMain, &chaincfg.MainNetParams)
	BitcoinTestnet = FromChaincfg(bitcoinTestnet, &chaincfg.TestNet3Params)
	BitcoinRegtest = FromChaincfg(bitcoinRegtest, &chaincfg.RegressionNetParams)
)

var networks = map[string]*Params{
	lbrycrdMain:    LbrycrdMain,
	lbrycrdTestnet: LbrycrdTestnet,
	lbrycrdRegtest: LbrycrdRegtest,
	bitcoinMain:    BitcoinMain,
	bitcoinTestnet: BitcoinTestnet,
	bitcoinRegtest: BitcoinRegtest,
}

// ByName returns a built-in network.
func ByName(name string) (*Params, error) {
	p, ok := networks[name]
	if !ok {
		return nil, errors.Prefix(name, ErrUnknownNetwork)
	}
	return p, nil
}

// Names lists the built-in networks, sorted.
func Names() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
