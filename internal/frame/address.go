package frame

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// addressTextLen is the exact length of a textual address: two hex digits per byte.
const addressTextLen = 16

// MAC is the 8-byte hardware address identifying one display frame.
// It is an immutable value type: created by ParseMAC, never mutated.
// Equality and ordering are byte-wise.
type MAC [8]byte

// ParseMAC decodes a textual hardware address.
//
// The input must be exactly 16 hexadecimal characters, upper or lower
// case; pairs of digits decode left-to-right into 8 bytes. Any other
// length, or any non-hex character, fails with ErrInvalidAddress.
func ParseMAC(text string) (MAC, error) {
	var mac MAC

	if len(text) != addressTextLen {
		return mac, fmt.Errorf("%w: %q has length %d, want %d",
			ErrInvalidAddress, text, len(text), addressTextLen)
	}

	raw, err := hex.DecodeString(text)
	if err != nil {
		return mac, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidAddress, text)
	}

	copy(mac[:], raw)
	return mac, nil
}

// String returns the canonical textual form: 16 uppercase hexadecimal
// characters, most-significant byte first. Parsing then printing is
// case-normalising but otherwise identity-preserving.
func (m MAC) String() string {
	return strings.ToUpper(hex.EncodeToString(m[:]))
}

// fileStem returns the filename stem used for the frame's stored assets:
// the address in lowercase hex, per the on-disk naming contract.
func (m MAC) fileStem() string {
	return hex.EncodeToString(m[:])
}
