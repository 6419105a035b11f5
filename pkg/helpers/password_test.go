package helpers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangearhq/fangear-api/pkg/helpers"
)

// TestHashPassword_NeverStoresPlaintext verifies the hash differs from
// the input and carries the bcrypt cost-10 prefix.
func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	hash, err := helpers.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "unexpected hash prefix: %s", hash)
}

// TestCompareHashAndPassword_RoundTrip verifies compare accepts the
// original password and rejects others.
func TestCompareHashAndPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := helpers.HashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, helpers.CompareHashAndPassword(hash, "hunter22"))
	assert.False(t, helpers.CompareHashAndPassword(hash, "hunter23"))
	assert.False(t, helpers.CompareHashAndPassword(hash, ""))
}

// TestHashPassword_SaltedHashesDiffer verifies two hashes of the same
// input differ (per-hash salt).
func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h1, err := helpers.HashPassword("hunter22")
	require.NoError(t, err)
	h2, err := helpers.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
