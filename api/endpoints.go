package api

import "strings"

// ParamKind tells the dispatcher which argument, if any, an endpoint needs.
type ParamKind int

const (
	ParamNone ParamKind = iota
	ParamAddress
	ParamHash
)

func (k ParamKind) String() string {
	switch k {
	case ParamAddress:
		return "address"
	case ParamHash:
		return "hash"
	default:
		return "none"
	}
}

// Endpoint describes a single q/ query on the explorer.
type Endpoint struct {
	Name    string
	Path    string
	Param   ParamKind
	Missing string // validation message when Param is required but empty
}

// Required reports whether the endpoint needs a parameter.
func (e Endpoint) Required() bool {
	return e.Param != ParamNone
}

var (
	EndpointAddressBalance = Endpoint{Name: "addressbalance", Path: "q/addressbalance", Param: ParamAddress, Missing: "Missing address to check."}
	EndpointAddressToHash  = Endpoint{Name: "addresstohash", Path: "q/addresstohash", Param: ParamAddress, Missing: "Missing address to hash."}
	EndpointCheckAddress   = Endpoint{Name: "checkaddress", Path: "q/checkaddress", Param: ParamAddress, Missing: "Missing address to check."}
	EndpointDecodeAddress  = Endpoint{Name: "decode_address", Path: "q/decode_address", Param: ParamAddress, Missing: "Missing address to decode."}
	EndpointBlockCount     = Endpoint{Name: "getblockcount", Path: "q/getblockcount"}
	EndpointDifficulty     = Endpoint{Name: "getdifficulty", Path: "q/getdifficulty"}
	EndpointReceived       = Endpoint{Name: "getreceivedbyaddress", Path: "q/getreceivedbyaddress", Param: ParamAddress, Missing: "Missing address to check."}
	EndpointSent           = Endpoint{Name: "getsentbyaddress", Path: "q/getsentbyaddress", Param: ParamAddress, Missing: "Missing address to check."}
	EndpointHashToAddress  = Endpoint{Name: "hashtoaddress", Path: "q/hashtoaddress", Param: ParamHash, Missing: "Missing hash to decode."}
	EndpointNetHash        = Endpoint{Name: "nethash", Path: "q/nethash?format=json"}
	EndpointTotalBC        = Endpoint{Name: "totalbc", Path: "q/totalbc"}
	EndpointTransactions   = Endpoint{Name: "transactions", Path: "q/transactions"}
)

// Endpoints lists every query the client exposes.
var Endpoints = []Endpoint{
	EndpointAddressBalance,
	EndpointAddressToHash,
	EndpointCheckAddress,
	EndpointDecodeAddress,
	EndpointBlockCount,
	EndpointDifficulty,
	EndpointReceived,
	EndpointSent,
	EndpointHashToAddress,
	EndpointNetHash,
	EndpointTotalBC,
	EndpointTransactions,
}

// LookupEndpoint finds an endpoint by name.
func LookupEndpoint(name string) (Endpoint, bool) {
	for _, ep := range Endpoints {
		if strings.EqualFold(ep.Name, name) {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// buildURL appends the parameter verbatim; encoding is the caller's job.
func buildURL(baseURL, chain string, ep Endpoint, param string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/chain/")
	b.WriteString(chain)
	b.WriteString("/")
	b.WriteString(ep.Path)
	if ep.Required() {
		b.WriteString("/")
		b.WriteString(param)
	}
	return b.String()
}
