package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AddressLength is the byte length of account addresses and object ids
const AddressLength = 32

// NormalizeAddress returns the canonical form of an account address or object id:
// lowercase, 0x-prefixed and left-padded to 32 bytes. Short forms such as "0x2" are accepted.
func NormalizeAddress(address string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(address))
	if !strings.HasPrefix(raw, "0x") {
		return "", fmt.Errorf("%w: missing 0x prefix: %q", ErrInvalidAddress, address)
	}

	digits := strings.TrimPrefix(raw, "0x")
	if len(digits) == 0 || len(digits) > AddressLength*2 {
		return "", fmt.Errorf("%w: bad length: %q", ErrInvalidAddress, address)
	}
	digits = strings.Repeat("0", AddressLength*2-len(digits)) + digits

	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	return hexutil.Encode(b), nil
}

// IsValidAddress reports whether the string is a valid account address or object id
func IsValidAddress(address string) bool {
	_, err := NormalizeAddress(address)
	return err == nil
}

// AddressBytes decodes an address into its 32 raw bytes
func AddressBytes(address string) ([AddressLength]byte, error) {
	var out [AddressLength]byte

	normalized, err := NormalizeAddress(address)
	if err != nil {
		return out, err
	}

	b, err := hexutil.Decode(normalized)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	copy(out[:], b)

	return out, nil
}

// AddressFromBytes encodes 32 raw bytes as a canonical address
func AddressFromBytes(b [AddressLength]byte) string {
	return hexutil.Encode(b[:])
}
