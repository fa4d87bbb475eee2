package checksum

import (
	"fmt"

	"go.uber.org/multierr"
)

// aliases lists, per Algorithm, every spelling Parse accepts. Matching is exact:
// a spelling that is not listed here is rejected, whatever its case or punctuation.
var aliases = map[Algorithm][]string{
	SHA1: {"SHA1", "SHA-1", "sha1"},
	SHA2_256: {
		"SHA2256", "SHA2-256", "SHA-2-256", "SHA2_256", "SHA-2_256", "SHA_2-256", "SHA_2_256",
		"sha2256", "sha2-256", "sha2_256",
	},
	SHA2_512: {
		"SHA2", "SHA-2", "sha2",
		"SHA2512", "SHA2-512", "SHA-2-512", "SHA2_512", "SHA-2_512", "SHA_2-512", "SHA_2_512",
		"sha2512", "sha2-512", "sha2_512",
	},
	SHA3_256: {
		"SHA3256", "SHA3-256", "SHA-3-256", "SHA3_256", "SHA-3_256", "SHA_3-256", "SHA_3_256",
		"sha3256", "sha3-256", "sha3_256",
	},
	SHA3_512: {
		"SHA3", "SHA-3", "sha3",
		"SHA3512", "SHA3-512", "SHA-3-512", "SHA3_512", "SHA-3_512", "SHA_3-512", "SHA_3_512",
		"sha3512", "sha3-512", "sha3_512",
	},
	BLAKE:   {"BLAKE", "blake"},
	BLAKE2:  {"BLAKE2", "blake2"},
	CRC64:   {"CRC64", "crc64"},
	CRC32:   {"CRC32", "crc32"},
	CRC16:   {"CRC16", "crc16"},
	CRC8:    {"CRC8", "crc8"},
	MD5:     {"MD5", "md5"},
	MD6_128: {"MD6128", "MD6-128", "MD6_128", "md6128", "md6-128", "md6_128"},
	MD6_256: {"MD6256", "MD6-256", "MD6_256", "md6256", "md6-256", "md6_256"},
	MD6_512: {"MD6512", "MD6-512", "MD6_512", "md6512", "md6-512", "md6_512"},
	XOR8:    {"XOR8", "xor8"},
}

// lookup is the reverse of aliases, built once at init and read-only afterwards.
var lookup = buildLookup(aliases)

func init() {
	if err := validateTable(aliases); err != nil {
		panic(fmt.Sprintf("checksum: invalid algorithm table: %v", err))
	}
}

func buildLookup(table map[Algorithm][]string) map[string]Algorithm {
	m := make(map[string]Algorithm)
	for alg, names := range table {
		for _, name := range names {
			m[name] = alg
		}
	}
	return m
}

// validateTable checks that every Algorithm has metadata and at least one
// alias, that canonical names parse back to their Algorithm, that no
// spelling is claimed by two algorithms, and that the table holds nothing else.
func validateTable(table map[Algorithm][]string) error {
	var err error

	owners := make(map[string][]Algorithm)
	for alg, names := range table {
		if !alg.IsValid() {
			err = multierr.Append(err, fmt.Errorf("alias table holds unknown algorithm %d", uint8(alg)))
		}
		for _, name := range names {
			owners[name] = append(owners[name], alg)
		}
	}

	for name, algs := range owners {
		if len(algs) > 1 {
			err = multierr.Append(err, fmt.Errorf("alias %q listed %d times", name, len(algs)))
		}
	}

	reverse := buildLookup(table)
	for _, alg := range All() {
		if len(table[alg]) == 0 {
			err = multierr.Append(err, fmt.Errorf("algorithm %s has no aliases", alg))
		}

		if alg.Size() == 0 {
			err = multierr.Append(err, fmt.Errorf("algorithm %s has no digest size", alg))
		}

		if got, ok := reverse[alg.String()]; !ok || got != alg {
			err = multierr.Append(err, fmt.Errorf("canonical name %q does not parse to %s", alg.String(), alg))
		}
	}

	return err
}

// Parse resolves a user-supplied algorithm name to its Algorithm.
//
// The name must match one of the accepted spellings byte for byte. The bare
// family names "SHA2" and "SHA3" select the 512-bit variants.
//
// Returns an *UnrecognizedAlgorithmError carrying the input unchanged if no
// spelling matches.
func Parse(name string) (Algorithm, error) {
	alg, ok := lookup[name]
	if !ok {
		return 0, &UnrecognizedAlgorithmError{Input: name, Category: errorCategory}
	}
	return alg, nil
}

// Aliases returns the spellings Parse accepts for the Algorithm, or nil if the
// Algorithm is not valid.
func Aliases(alg Algorithm) []string {
	names, ok := aliases[alg]
	if !ok {
		return nil
	}

	out := make([]string, len(names))
	copy(out, names)
	return out
}
