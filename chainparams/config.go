package chainparams

import (
	"encoding/hex"
	"strings"

	"github.com/go-ini/ini"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/lbryio/base58.go/extras/errors"
)

// Load reads a network definition from an ini file, or from raw ini bytes. Keys live in the
// default section:
//
//	name = mynet
//	pubkey_address = 85
//	script_address = 0x7a
//	secret_key = 28
//	ext_public_key = 0x0488b21e
//	ext_secret_key = 0x0488ade4
//
// Values are either a decimal byte or a 0x-prefixed hex string of any length.
func Load(source interface{}) (*Params, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, errors.Err(err)
	}

	section, err := cfg.GetSection("")
	if err != nil {
		return nil, errors.Err(err)
	}

	name := section.Key("name").String()
	if name == "" {
		return nil, errors.Err("network file has no name")
	}

	prefixes := make(map[Base58Type][]byte)
	for _, t := range Base58Types() {
		if !section.HasKey(t.String()) {
			continue
		}
		prefix, err := parsePrefix(section.Key(t.String()).String())
		if err != nil {
			return nil, errors.Prefix(name+" "+t.String(), err)
		}
		prefixes[t] = prefix
	}
	if len(prefixes) == 0 {
		return nil, errors.Prefix(name+": no prefixes", ErrInvalidPrefix)
	}

	log.Debugf("loaded network %s with %d prefixes", name, len(prefixes))
	return NewParams(name, prefixes), nil
}

func parsePrefix(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		b, err := hex.DecodeString(value[2:])
		if err != nil || len(b) == 0 {
			return nil, errors.Prefix(value, ErrInvalidPrefix)
		}
		return b, nil
	}

	n, err := cast.ToIntE(value)
	if err != nil || n < 0 || n > 255 {
		return nil, errors.Prefix(value, ErrInvalidPrefix)
	}
	return []byte{byte(n)}, nil
}
