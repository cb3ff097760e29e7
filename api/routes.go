package api

import (
	"encoding/hex"
	"net/http"

	"github.com/gorilla/mux"
	v "github.com/lbryio/ozzo-validation"
	"golang.org/x/time/rate"

	"github.com/lbryio/base58.go/address"
	"github.com/lbryio/base58.go/address/base58"
	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/errors"
)

// Config configures the API router.
type Config struct {
	// Network is used by /inspect when the request does not name one.
	Network *chainparams.Params
	// Rate is the sustained number of requests per second. Zero disables limiting.
	Rate  rate.Limit
	Burst int
}

type service struct {
	network *chainparams.Params
}

// NewRouter returns the routes of the API.
func NewRouter(cfg Config) *mux.Router {
	s := &service{network: cfg.Network}
	if s.network == nil {
		s.network = chainparams.LbrycrdMain
	}

	r := mux.NewRouter()
	r.Handle("/encode", Handler(s.encode)).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/decode", Handler(s.decode)).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/inspect", Handler(s.inspect)).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/networks", Handler(s.networks)).Methods(http.MethodGet)

	if cfg.Rate > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		r.Use(rateLimit(rate.NewLimiter(cfg.Rate, burst)))
	}
	return r
}

func rateLimit(limiter *rate.Limiter) mux.MiddlewareFunc {
	limited := Handler(func(*http.Request) Response {
		return Response{Error: ErrRateLimited}
	})
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type encodeParams struct {
	Hex     string
	Version string
	Check   bool
}

func (s *service) encode(r *http.Request) Response {
	var params encodeParams
	if err := FormValues(r, &params, nil); err != nil {
		return Response{Error: err}
	}

	payload, err := hex.DecodeString(params.Hex)
	if err != nil {
		return Response{Error: errors.Prefix("hex", ErrInvalidParams)}
	}
	version, err := hex.DecodeString(params.Version)
	if err != nil {
		return Response{Error: errors.Prefix("version", ErrInvalidParams)}
	}

	var encoded string
	if params.Check {
		var d address.Data
		d.SetData(version, payload)
		encoded = d.String()
	} else {
		encoded = base58.Encode(append(version, payload...))
	}
	return Response{Data: map[string]string{"encoded": encoded}}
}

type decodeParams struct {
	Text          string
	Check         bool
	VersionLength int
}

func (s *service) decode(r *http.Request) Response {
	var params decodeParams
	err := FormValues(r, &params, []*v.FieldRules{
		v.Field(&params.Text, v.Required),
	})
	if err != nil {
		return Response{Error: err}
	}

	if !params.Check {
		decoded, err := base58.Decode(params.Text)
		if err != nil {
			return Response{Error: err}
		}
		return Response{Data: map[string]string{"hex": hex.EncodeToString(decoded)}}
	}

	var d address.Data
	defer d.Wipe()
	if err := d.SetString(params.Text, params.VersionLength); err != nil {
		return Response{Error: err}
	}
	return Response{Data: map[string]string{
		"version": hex.EncodeToString(d.Version()),
		"payload": hex.EncodeToString(d.Payload()),
	}}
}

type inspectParams struct {
	Text    string
	Network string
}

type inspectResult struct {
	Network    string `json:"network"`
	Type       string `json:"type"`
	Version    string `json:"version"`
	Payload    string `json:"payload,omitempty"`
	Compressed bool   `json:"compressed,omitempty"`
}

func (s *service) inspect(r *http.Request) Response {
	var params inspectParams
	err := FormValues(r, &params, []*v.FieldRules{
		v.Field(&params.Text, v.Required),
	})
	if err != nil {
		return Response{Error: err}
	}

	network := s.network
	if params.Network != "" {
		network, err = chainparams.ByName(params.Network)
		if err != nil {
			return Response{Error: err}
		}
	}

	info, err := address.Inspect(params.Text, network)
	if err != nil {
		return Response{Error: err}
	}
	return Response{Data: inspectResult{
		Network:    network.Name,
		Type:       info.Type.String(),
		Version:    hex.EncodeToString(info.Version),
		Payload:    hex.EncodeToString(info.Payload),
		Compressed: info.Compressed,
	}}
}

func (s *service) networks(r *http.Request) Response {
	return Response{Data: chainparams.Names()}
}
