// Package base62 encodes 128-bit identifiers into the compact wire
// format used by the public API. Internal ids are UUIDs; on the wire
// they travel as fixed-length 22 character base62 strings.
package base62

import (
	"fmt"

	"github.com/google/uuid"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// EncodedLen is the fixed length of an encoded id. 62^22 > 2^128, so
// every UUID fits.
const EncodedLen = 22

var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i)
	}
	return table
}

// Encode converts an id into its 22 character base62 form.
func Encode(id uuid.UUID) string {
	num := id // big-endian 128-bit value, consumed by repeated division

	out := make([]byte, EncodedLen)
	for pos := EncodedLen - 1; pos >= 0; pos-- {
		rem := 0
		for i := 0; i < len(num); i++ {
			cur := rem*256 + int(num[i])
			num[i] = byte(cur / 62)
			rem = cur % 62
		}
		out[pos] = alphabet[rem]
	}

	return string(out)
}

// Decode parses a 22 character base62 string back into a UUID. It
// rejects wrong lengths, characters outside the alphabet, and values
// that do not fit in 128 bits.
func Decode(s string) (uuid.UUID, error) {
	if len(s) != EncodedLen {
		return uuid.Nil, fmt.Errorf("invalid id length %d, want %d", len(s), EncodedLen)
	}

	var num uuid.UUID
	for i := 0; i < len(s); i++ {
		digit := decodeTable[s[i]]
		if digit < 0 {
			return uuid.Nil, fmt.Errorf("invalid character %q in id", s[i])
		}

		carry := int(digit)
		for j := len(num) - 1; j >= 0; j-- {
			cur := int(num[j])*62 + carry
			num[j] = byte(cur & 0xff)
			carry = cur >> 8
		}
		if carry != 0 {
			return uuid.Nil, fmt.Errorf("id value out of range")
		}
	}

	return num, nil
}
