package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chinmay1088/dogechain/address"
	"github.com/chinmay1088/dogechain/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	offlineFlag bool
	versionFlag string
)

var checkAddressCmd = &cobra.Command{
	Use:   "checkaddress <address>",
	Short: "Check whether an address is valid",
	Long: `Check an address. A valid address answers with its version byte in hex,
otherwise one of:
  X5  the address contains non-base58 characters
  SZ  the address has the wrong length
  CK  the checksum does not match

Examples:
  dogechain checkaddress D8T...XYZ            # Ask the explorer
  dogechain checkaddress D8T...XYZ --offline  # Check locally`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckAddress,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <address>",
	Short: "Decode an address into version byte and hash",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

var addressToHashCmd = &cobra.Command{
	Use:   "addresstohash <address>",
	Short: "Show the 160-bit hash encoded in an address",
	Long: `Show the 160-bit hash encoded in an address. The address is not
checked for validity.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddressToHash,
}

var hashToAddressCmd = &cobra.Command{
	Use:   "hashtoaddress <hash>",
	Short: "Convert a 160-bit hash to an address",
	Long: `Convert a 160-bit hash to an address.

Examples:
  dogechain hashtoaddress 20B7425C2C55A745F0558906972F42FAB1CA9D10
  dogechain hashtoaddress 20B7...9D10 --offline --version-byte 16  # P2SH`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashToAddress,
}

var pubKeyToAddressCmd = &cobra.Command{
	Use:   "pubkeytoaddress <pubkey>",
	Short: "Derive the address of a hex public key (offline)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := address.FromPubKey(args[0])
		if err != nil {
			return err
		}
		printValue(cmd, "🔑 Address", addr)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{checkAddressCmd, decodeCmd, addressToHashCmd, hashToAddressCmd} {
		c.Flags().BoolVar(&offlineFlag, "offline", false, "compute locally instead of asking the explorer")
	}
	hashToAddressCmd.Flags().StringVar(&versionFlag, "version-byte", "1e", "version byte in hex for --offline (1e P2PKH, 16 P2SH)")
}

func runCheckAddress(cmd *cobra.Command, args []string) error {
	addr := firstArg(args)

	var code string
	if offlineFlag {
		if addr == "" {
			return missing(api.EndpointCheckAddress)
		}
		code = address.Check(addr)
	} else {
		body, err := query(cmd, api.EndpointCheckAddress, addr)
		if err != nil {
			return err
		}
		if rawFlag {
			printRaw(cmd, body)
			return nil
		}
		code = trimQuotes(body)
	}

	if quietFlag || rawFlag {
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	}

	switch strings.ToUpper(code) {
	case address.CodeBadChars, address.CodeBadSize, address.CodeBadChecksum:
		fmt.Fprintf(cmd.OutOrStdout(), "❌ %s: %s (%s)\n", addr, color.RedString("invalid"), address.DescribeCheck(code))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: %s (%s)\n", addr, color.GreenString("valid"), address.DescribeCheck(code))
	}
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	addr := firstArg(args)

	var decoded address.Decoded
	if offlineFlag {
		if addr == "" {
			return missing(api.EndpointDecodeAddress)
		}
		d, err := address.Decode(addr)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", addr, err)
		}
		decoded = d
	} else {
		body, err := query(cmd, api.EndpointDecodeAddress, addr)
		if err != nil {
			return err
		}
		version, hash, err := api.ParseDecodedAddress(body)
		if rawFlag || err != nil {
			printRaw(cmd, body)
			return nil
		}
		decoded = address.Decoded{Version: version, Hash: hash}
	}

	printValue(cmd, "🔓 Decoded", decoded.String())
	printDetail(cmd, "Version: 0x%02x (%s)", decoded.Version, decoded.Kind())
	printDetail(cmd, "Hash160: %s", decoded.HashHex())
	return nil
}

func runAddressToHash(cmd *cobra.Command, args []string) error {
	addr := firstArg(args)

	var hash string
	if offlineFlag {
		if addr == "" {
			return missing(api.EndpointAddressToHash)
		}
		h, err := address.ToHash(addr)
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", addr, err)
		}
		hash = h
	} else {
		body, err := query(cmd, api.EndpointAddressToHash, addr)
		if err != nil {
			return err
		}
		if rawFlag {
			printRaw(cmd, body)
			return nil
		}
		hash = trimQuotes(body)
	}

	printValue(cmd, "#️⃣  Hash160", hash)
	return nil
}

func runHashToAddress(cmd *cobra.Command, args []string) error {
	hash := firstArg(args)

	var addr string
	if offlineFlag {
		if hash == "" {
			return missing(api.EndpointHashToAddress)
		}
		version, err := strconv.ParseUint(strings.TrimPrefix(versionFlag, "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid version byte %q: %w", versionFlag, err)
		}
		a, err := address.FromHash(hash, byte(version))
		if err != nil {
			return err
		}
		addr = a
	} else {
		body, err := query(cmd, api.EndpointHashToAddress, hash)
		if err != nil {
			return err
		}
		if rawFlag {
			printRaw(cmd, body)
			return nil
		}
		addr = trimQuotes(body)
	}

	printValue(cmd, "📍 Address", addr)
	return nil
}
