package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateBirthDate(t *testing.T) {
	today := time.Now()
	format := func(t time.Time) string { return t.Format("2006-01-02") }

	t.Run("accepts a normal birth date and derives the age", func(t *testing.T) {
		res := ValidateBirthDate("1988-04-12")
		require.True(t, res.Valid)
		require.NotNil(t, res.Age)
		require.Greater(t, *res.Age, 30)
	})

	t.Run("age counts whole years only", func(t *testing.T) {
		// born exactly 25 years ago today
		born := today.AddDate(-25, 0, 0)
		res := ValidateBirthDate(format(born))
		require.True(t, res.Valid)
		require.Equal(t, 25, *res.Age)
	})

	t.Run("the day before the birthday the age is one less", func(t *testing.T) {
		born := today.AddDate(-25, 0, 1)
		res := ValidateBirthDate(format(born))
		require.True(t, res.Valid)
		require.Equal(t, 24, *res.Age)
	})

	t.Run("today is a valid birth date with age zero", func(t *testing.T) {
		res := ValidateBirthDate(format(today))
		require.True(t, res.Valid)
		require.Equal(t, 0, *res.Age)
	})

	t.Run("tomorrow is rejected", func(t *testing.T) {
		res := ValidateBirthDate(format(today.AddDate(0, 0, 1)))
		require.False(t, res.Valid)
		require.Equal(t, "birth date cannot be in the future", res.Message)
	})

	t.Run("exactly 120 years ago is still accepted", func(t *testing.T) {
		res := ValidateBirthDate(format(today.AddDate(-120, 0, 0)))
		require.True(t, res.Valid)
		require.Equal(t, 120, *res.Age)
	})

	t.Run("more than 120 years ago is rejected", func(t *testing.T) {
		res := ValidateBirthDate(format(today.AddDate(-120, 0, -1)))
		require.False(t, res.Valid)
		require.Equal(t, "birth date does not look correct", res.Message)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		res := ValidateBirthDate("   ")
		require.False(t, res.Valid)
		require.Equal(t, "birth date is required", res.Message)
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		require.False(t, ValidateBirthDate("not-a-date").Valid)
		require.False(t, ValidateBirthDate("12/04/1988").Valid)
		require.False(t, ValidateBirthDate("1988-13-40").Valid)
	})
}
