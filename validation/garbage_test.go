package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeemsValidDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"real DNI shape passes", "71439258Z", true},
		{"real NIE shape passes", "X9147036L", true},
		{"passport shape passes", "PAB197358", true},
		{"below minimum length fails", "AB1", false},
		{"single repeated character fails", "AAAAAAAA", false},
		{"dominant character fails", "AAAAAAAAB", false},
		{"two character tile fails", "ABABABABAB", false},
		{"three character tile fails", "XYZXYZXYZ", false},
		{"ascending digit run fails", "12345678", false},
		{"descending digit run fails", "98765432", false},
		{"ascending letter run fails", "ABCDEFGH", false},
		{"long input with two distinct chars fails", "ABBABBAA", false},
		{"short input with two distinct chars passes", "ABBAB", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SeemsValidDocument(tt.input))
		})
	}
}

func TestGarbageThresholds_Custom(t *testing.T) {
	strict := GarbageThresholds{
		TiledBlockShare:      0.4,
		DominantCharShare:    0.5,
		MaxMonotonicRun:      3,
		MinDistinctChars:     4,
		MinLengthForDistinct: 6,
	}

	// passes the defaults but trips the stricter run limit
	require.True(t, DefaultGarbageThresholds.SeemsValid("AB123X"))
	require.False(t, strict.SeemsValid("AB1234X"))
}
