package hdwallet

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	return seed
}

func TestSelector_KnownVector(t *testing.T) {
	// sha256("alice@example.com") starts with ff8d9819.
	assert.Equal(t, uint32(0xff8d9819), Selector("alice@example.com"))
	// sha256("bob@example.com") starts with 5ff860bf.
	assert.Equal(t, uint32(0x5ff860bf), Selector("bob@example.com"))
}

func TestSelector_Stable(t *testing.T) {
	assert.Equal(t, Selector("carol@example.com"), Selector("carol@example.com"))
	assert.NotEqual(t, Selector("alice@example.com"), Selector("bob@example.com"))
}

func TestAddress_Deterministic(t *testing.T) {
	d, err := New(testSeed(t), &chaincfg.MainNetParams)
	require.NoError(t, err)

	a1, err := d.Address("alice@example.com")
	require.NoError(t, err)
	a2, err := d.Address("alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.NotEmpty(t, a1)
}

func TestAddress_DeterministicAcrossInstances(t *testing.T) {
	d1, err := New(testSeed(t), &chaincfg.MainNetParams)
	require.NoError(t, err)
	d2, err := New(testSeed(t), &chaincfg.MainNetParams)
	require.NoError(t, err)

	a1, err := d1.Address("alice@example.com")
	require.NoError(t, err)
	a2, err := d2.Address("alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
}

func TestAddress_SensitiveToEmail(t *testing.T) {
	d, err := New(testSeed(t), &chaincfg.MainNetParams)
	require.NoError(t, err)

	// Emails with distinct 4-byte digest prefixes must map to distinct
	// addresses. Colliding prefixes (~1 in 2^32) are accepted.
	alice, err := d.Address("alice@example.com")
	require.NoError(t, err)
	bob, err := d.Address("bob@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, alice, bob)
}

func TestAddress_SensitiveToSeed(t *testing.T) {
	d1, err := New(testSeed(t), &chaincfg.MainNetParams)
	require.NoError(t, err)

	otherSeed, err := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	require.NoError(t, err)
	d2, err := New(otherSeed, &chaincfg.MainNetParams)
	require.NoError(t, err)

	a1, err := d1.Address("alice@example.com")
	require.NoError(t, err)
	a2, err := d2.Address("alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a1, a2)
}

func TestNew_RejectsShortSeed(t *testing.T) {
	_, err := New([]byte{0x01, 0x02}, &chaincfg.MainNetParams)
	assert.Error(t, err)
}

func TestParseNetwork(t *testing.T) {
	params, err := ParseNetwork("mainnet")
	require.NoError(t, err)
	assert.Equal(t, &chaincfg.MainNetParams, params)

	params, err = ParseNetwork("testnet")
	require.NoError(t, err)
	assert.Equal(t, &chaincfg.TestNet3Params, params)

	_, err = ParseNetwork("nope")
	assert.Error(t, err)
}
