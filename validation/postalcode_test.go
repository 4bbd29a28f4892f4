package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePostalCode(t *testing.T) {
	t.Run("accepts a clean Spanish code", func(t *testing.T) {
		require.True(t, ValidatePostalCode("28001", "ES").Valid)
	})

	t.Run("cleans stray separators from numeric codes", func(t *testing.T) {
		require.True(t, ValidatePostalCode("28 001", "ES").Valid)
		require.True(t, ValidatePostalCode("28-001", "ES").Valid)
	})

	t.Run("strips zero width characters", func(t *testing.T) {
		require.True(t, ValidatePostalCode("28​001", "ES").Valid)
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		res := ValidatePostalCode("  ", "ES")
		require.False(t, res.Valid)
		require.Equal(t, "postal code is required", res.Message)
	})

	t.Run("rejects a wrong length with an example", func(t *testing.T) {
		res := ValidatePostalCode("2800", "ES")
		require.False(t, res.Valid)
		require.Equal(t, "28001", res.Example)
	})

	t.Run("keeps the mandatory Portuguese hyphen", func(t *testing.T) {
		require.True(t, ValidatePostalCode("1000-205", "PT").Valid)
		require.False(t, ValidatePostalCode("1000205", "PT").Valid)
	})

	t.Run("accepts US ZIP with and without the plus four", func(t *testing.T) {
		require.True(t, ValidatePostalCode("90210", "US").Valid)
		require.True(t, ValidatePostalCode("90210-1234", "US").Valid)
	})

	t.Run("upper cases and compacts UK codes", func(t *testing.T) {
		require.True(t, ValidatePostalCode("sw1a 1aa", "GB").Valid)
		require.True(t, ValidatePostalCode("SW1A1AA", "GB").Valid)
	})

	t.Run("a Spanish code is not a UK code", func(t *testing.T) {
		res := ValidatePostalCode("28001", "GB")
		require.False(t, res.Valid)
		require.Equal(t, "SW1A 1AA", res.Example)
	})

	t.Run("Dutch codes keep their letters", func(t *testing.T) {
		require.True(t, ValidatePostalCode("1234 AB", "NL").Valid)
		require.True(t, ValidatePostalCode("1234ab", "NL").Valid)
	})

	t.Run("unknown country only gets a length check", func(t *testing.T) {
		require.True(t, ValidatePostalCode("A1B 2C3", "CA").Valid)
		require.False(t, ValidatePostalCode("A1", "CA").Valid)
		require.False(t, ValidatePostalCode("A1B2C3A1B2C", "CA").Valid)
	})
}

func TestCleanPostalCode(t *testing.T) {
	require.Equal(t, "28001", CleanPostalCode(" 28.001 ", "ES"))
	require.Equal(t, "SW1A1AA", CleanPostalCode("sw1a 1aa", "GB"))
	require.Equal(t, "1234 AB", CleanPostalCode(" 1234  ab ", "NL"))
	// no cleaning class registered, only the trim applies
	require.Equal(t, "A1B 2C3", CleanPostalCode(" A1B 2C3 ", "CA"))
}
