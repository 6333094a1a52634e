// Package address decodes and encodes Dogecoin base58check addresses
// locally, mirroring the explorer's checkaddress, decode_address,
// addresstohash and hashtoaddress queries without a network round trip.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// checkaddress result codes used by the explorer
const (
	CodeBadChars    = "X5"
	CodeBadSize     = "SZ"
	CodeBadChecksum = "CK"
)

// hash160 plus version byte plus 4 byte checksum
const decodedLen = 1 + 20 + 4

var (
	ErrBadChars    = errors.New("address contains non-base58 characters")
	ErrBadSize     = errors.New("address has the wrong length")
	ErrBadChecksum = errors.New("address checksum mismatch")
	ErrBadHash     = errors.New("hash must be 20 bytes of hex")
)

// Decoded is the content of an address.
type Decoded struct {
	Version byte
	Hash    []byte
}

// String renders the decoded address as the explorer does, e.g. "1e:20B7...".
func (d Decoded) String() string {
	return fmt.Sprintf("%02x:%s", d.Version, strings.ToUpper(hex.EncodeToString(d.Hash)))
}

// HashHex returns the upper-case hex hash160.
func (d Decoded) HashHex() string {
	return strings.ToUpper(hex.EncodeToString(d.Hash))
}

// Kind names the address type for known Dogecoin version bytes.
func (d Decoded) Kind() string {
	switch d.Version {
	case PubKeyHashID:
		return "P2PKH"
	case ScriptHashID:
		return "P2SH"
	default:
		return "unknown"
	}
}

// Decode splits addr into version byte and hash160.
func Decode(addr string) (Decoded, error) {
	raw := base58.Decode(addr)
	if len(raw) == 0 {
		return Decoded{}, ErrBadChars
	}
	if len(raw) != decodedLen {
		return Decoded{}, ErrBadSize
	}
	hash, version, err := base58.CheckDecode(addr)
	if err != nil {
		return Decoded{}, ErrBadChecksum
	}
	return Decoded{Version: version, Hash: hash}, nil
}

// Check returns the version byte in upper-case hex for a valid address, or
// the explorer's failure code.
func Check(addr string) string {
	d, err := Decode(addr)
	switch {
	case errors.Is(err, ErrBadChars):
		return CodeBadChars
	case errors.Is(err, ErrBadSize):
		return CodeBadSize
	case err != nil:
		return CodeBadChecksum
	}
	return fmt.Sprintf("%02X", d.Version)
}

// DescribeCheck explains a checkaddress result.
func DescribeCheck(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case CodeBadChars:
		return ErrBadChars.Error()
	case CodeBadSize:
		return ErrBadSize.Error()
	case CodeBadChecksum:
		return ErrBadChecksum.Error()
	case "1E":
		return "valid pay-to-pubkey-hash address"
	case "16":
		return "valid pay-to-script-hash address"
	default:
		return "valid address with unrecognised version " + code
	}
}

// ToHash returns the upper-case hex hash160 encoded in addr. Like the
// explorer, any version byte is accepted.
func ToHash(addr string) (string, error) {
	d, err := Decode(addr)
	if err != nil {
		return "", err
	}
	return d.HashHex(), nil
}

// FromHash encodes a hex hash160 as an address with the given version.
func FromHash(hexHash string, version byte) (string, error) {
	hash, err := hex.DecodeString(strings.TrimSpace(hexHash))
	if err != nil || len(hash) != 20 {
		return "", ErrBadHash
	}

	switch version {
	case PubKeyHashID:
		a, err := btcutil.NewAddressPubKeyHash(hash, &MainNetParams)
		if err != nil {
			return "", err
		}
		return a.EncodeAddress(), nil
	case ScriptHashID:
		a, err := btcutil.NewAddressScriptHashFromHash(hash, &MainNetParams)
		if err != nil {
			return "", err
		}
		return a.EncodeAddress(), nil
	default:
		return base58.CheckEncode(hash, version), nil
	}
}

// FromPubKey derives the pay-to-pubkey-hash address of a hex encoded
// secp256k1 public key, keeping its compressed or uncompressed form.
func FromPubKey(hexKey string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return "", fmt.Errorf("invalid public key hex: %w", err)
	}
	if _, err := btcec.ParsePubKey(raw); err != nil {
		return "", fmt.Errorf("invalid public key: %w", err)
	}
	a, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(raw), &MainNetParams)
	if err != nil {
		return "", err
	}
	return a.EncodeAddress(), nil
}
