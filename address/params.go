package address

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Dogecoin mainnet version bytes
const (
	PubKeyHashID byte = 0x1e // addresses starting with D
	ScriptHashID byte = 0x16 // addresses starting with 9 or A
	PrivateKeyID byte = 0x9e
)

var genesisHash = mustHash("1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691")

// MainNetParams holds the Dogecoin mainnet parameters needed for address
// encoding. Only the address related fields are meaningful. They are
// registered with chaincfg so btcutil.DecodeAddress and the chaincfg ID
// lookups recognise Dogecoin addresses.
var MainNetParams = chaincfg.Params{
	Name:             "dogecoin",
	Net:              wire.BitcoinNet(0xc0c0c0c0),
	DefaultPort:      "22556",
	GenesisHash:      genesisHash,
	PubKeyHashAddrID: PubKeyHashID,
	ScriptHashAddrID: ScriptHashID,
	PrivateKeyID:     PrivateKeyID,
	HDPrivateKeyID:   [4]byte{0x02, 0xfa, 0xc3, 0x98}, // dgpv
	HDPublicKeyID:    [4]byte{0x02, 0xfa, 0xca, 0xfd}, // dgub
	HDCoinType:       3,
}

func init() {
	if err := chaincfg.Register(&MainNetParams); err != nil && !errors.Is(err, chaincfg.ErrDuplicateNet) {
		panic(err)
	}
}

func mustHash(s string) *chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return h
}
