package checksum_test

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash/crc32"
	"hash/crc64"
	"strconv"
	"testing"

	"github.com/iamNilotpal/checksums/pkg/checksum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

func TestHexLen_every_algorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alg      checksum.Algorithm
		wantSize int
		wantHex  int
	}{
		{checksum.XOR8, 1, 2},
		{checksum.CRC8, 1, 2},
		{checksum.CRC16, 2, 4},
		{checksum.CRC32, 4, 8},
		{checksum.CRC64, 8, 16},
		{checksum.MD5, 16, 32},
		{checksum.MD6_128, 16, 32},
		{checksum.SHA1, 20, 40},
		{checksum.SHA2_256, 32, 64},
		{checksum.SHA3_256, 32, 64},
		{checksum.MD6_256, 32, 64},
		{checksum.SHA2_512, 64, 128},
		{checksum.SHA3_512, 64, 128},
		{checksum.BLAKE, 64, 128},
		{checksum.BLAKE2, 64, 128},
		{checksum.MD6_512, 64, 128},
	}

	require.Len(t, tests, len(checksum.All()))

	for _, tt := range tests {
		tt := tt
		t.Run(tt.alg.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantSize, tt.alg.Size())
			assert.Equal(t, tt.wantHex, tt.alg.HexLen())
			assert.Equal(t, 2*tt.alg.Size(), tt.alg.HexLen())
		})
	}
}

func TestSize_matches_real_digests(t *testing.T) {
	t.Parallel()

	tests := map[checksum.Algorithm]int{
		checksum.MD5:      md5.Size,
		checksum.SHA1:     sha1.Size,
		checksum.SHA2_256: sha256.Size,
		checksum.SHA2_512: sha512.Size,
		checksum.SHA3_256: sha3.New256().Size(),
		checksum.SHA3_512: sha3.New512().Size(),
		checksum.BLAKE2:   blake2b.Size,
		checksum.CRC32:    crc32.Size,
		checksum.CRC64:    crc64.Size,
	}

	for alg, want := range tests {
		assert.Equal(t, want, alg.Size(), alg.String())
	}
}

func TestAll_is_closed_set(t *testing.T) {
	t.Parallel()

	all := checksum.All()
	require.Len(t, all, 16)

	seen := make(map[checksum.Algorithm]bool)
	for _, alg := range all {
		assert.True(t, alg.IsValid(), alg.String())
		assert.False(t, seen[alg], "duplicate %s", alg)
		seen[alg] = true
	}

	all[0] = checksum.XOR8
	assert.Equal(t, checksum.SHA1, checksum.All()[0])
}

func TestInvalid_algorithm(t *testing.T) {
	t.Parallel()

	for _, alg := range []checksum.Algorithm{0, checksum.XOR8 + 1, 255} {
		assert.False(t, alg.IsValid())
		assert.Equal(t, "unknown", alg.String())
		assert.Zero(t, alg.Size())
		assert.Zero(t, alg.HexLen())
		assert.Nil(t, checksum.Aliases(alg))

		_, err := alg.MarshalText()
		assert.ErrorIs(t, err, checksum.ErrUnrecognizedAlgorithm)
		assert.Equal(t, strconv.Itoa(int(alg)), checksum.AsUnrecognizedAlgorithm(err).Input)
	}
}

func TestString_round_trips_through_Parse(t *testing.T) {
	t.Parallel()

	for _, alg := range checksum.All() {
		got, err := checksum.Parse(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
}

func TestText_marshalling(t *testing.T) {
	t.Parallel()

	text, err := checksum.SHA3_256.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "SHA3-256", string(text))

	var alg checksum.Algorithm
	require.NoError(t, alg.UnmarshalText([]byte("sha2")))
	assert.Equal(t, checksum.SHA2_512, alg)

	err = alg.UnmarshalText([]byte("Sha1"))
	require.ErrorIs(t, err, checksum.ErrUnrecognizedAlgorithm)
	assert.Equal(t, checksum.SHA2_512, alg, "failed unmarshal must leave value untouched")
}
