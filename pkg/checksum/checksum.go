// Package checksum identifies the checksum and hash algorithms a file-hashing
// tool can be asked for. It maps the many ways a user may spell an algorithm
// name onto exactly one Algorithm, and reports how wide that algorithm's hex
// digest is. It performs no hashing itself.
package checksum

import "strconv"

// Algorithm represents one checksum or hash function from a closed set.
// Each variant has a single, fixed output width.
type Algorithm uint8

const (
	// SHA1 produces 160-bit digests.
	SHA1 Algorithm = iota + 1

	// SHA2_256 is SHA-2 with a 256-bit digest.
	SHA2_256

	// SHA2_512 is SHA-2 with a 512-bit digest.
	// The bare family name "SHA2" resolves here.
	SHA2_512

	// SHA3_256 is SHA-3 with a 256-bit digest.
	SHA3_256

	// SHA3_512 is SHA-3 with a 512-bit digest.
	// The bare family name "SHA3" resolves here.
	SHA3_512

	// BLAKE is the 512-bit BLAKE function.
	BLAKE

	// BLAKE2 is the 512-bit BLAKE2 function.
	BLAKE2

	CRC64
	CRC32
	CRC16
	CRC8

	MD5

	// MD6_128 is MD6 with a 128-bit digest.
	MD6_128

	// MD6_256 is MD6 with a 256-bit digest.
	MD6_256

	// MD6_512 is MD6 with a 512-bit digest.
	MD6_512

	// XOR8 folds all input bytes into one with XOR.
	XOR8
)

// All returns every Algorithm in declaration order.
// The returned slice is a fresh copy and may be modified by the caller.
func All() []Algorithm {
	return []Algorithm{
		SHA1, SHA2_256, SHA2_512, SHA3_256, SHA3_512, BLAKE, BLAKE2,
		CRC64, CRC32, CRC16, CRC8, MD5, MD6_128, MD6_256, MD6_512, XOR8,
	}
}

// IsValid checks if the Algorithm is a member of the closed set.
// Returns false for the zero value and any converted out-of-range value.
func (a Algorithm) IsValid() bool {
	return a >= SHA1 && a <= XOR8
}

// String returns the canonical name of the Algorithm.
// Every canonical name is also an accepted spelling for Parse.
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA1"
	case SHA2_256:
		return "SHA2-256"
	case SHA2_512:
		return "SHA2-512"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_512:
		return "SHA3-512"
	case BLAKE:
		return "BLAKE"
	case BLAKE2:
		return "BLAKE2"
	case CRC64:
		return "CRC64"
	case CRC32:
		return "CRC32"
	case CRC16:
		return "CRC16"
	case CRC8:
		return "CRC8"
	case MD5:
		return "MD5"
	case MD6_128:
		return "MD6-128"
	case MD6_256:
		return "MD6-256"
	case MD6_512:
		return "MD6-512"
	case XOR8:
		return "XOR8"
	default:
		return "unknown"
	}
}

// Size returns the length, in bytes, of the digest the Algorithm produces.
// Returns 0 for values outside the closed set.
func (a Algorithm) Size() int {
	switch a {
	case XOR8, CRC8:
		return 1
	case CRC16:
		return 2
	case CRC32:
		return 4
	case CRC64:
		return 8
	case MD5, MD6_128:
		return 16
	case SHA1:
		return 20
	case SHA2_256, SHA3_256, MD6_256:
		return 32
	case SHA2_512, SHA3_512, BLAKE, BLAKE2, MD6_512:
		return 64
	default:
		return 0
	}
}

// HexLen returns the number of hex characters in the Algorithm's textual digest.
// Each digest byte renders as two hex characters.
func (a Algorithm) HexLen() int {
	return a.Size() * 2
}

// MarshalText implements encoding.TextMarshaler using the canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, &UnrecognizedAlgorithmError{Input: strconv.Itoa(int(a)), Category: errorCategory}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be one of
// the spellings accepted by Parse.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
