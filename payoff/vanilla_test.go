package payoff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVanilla(t *testing.T) {
	type testCases struct {
		name   string
		kind   OptionKind
		x      float64
		strike float64
		want   float64
	}

	for _, test := range []testCases{
		{name: "CALL_ITM", kind: Call, x: 110, strike: 100, want: 10},
		{name: "CALL_OTM", kind: Call, x: 90, strike: 100, want: 0},
		{name: "CALL_ATM", kind: Call, x: 100, strike: 100, want: 0},
		{name: "PUT_ITM", kind: Put, x: 90, strike: 100, want: 10},
		{name: "PUT_OTM", kind: Put, x: 110, strike: 100, want: 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Vanilla(test.kind, test.x, test.strike)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestVanillaUnknownKind(t *testing.T) {
	_, err := Vanilla(OptionKind("X"), 100, 100)
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Contains(t, err.Error(), `"X"`)
}

func TestKindValid(t *testing.T) {
	require.NoError(t, Call.Valid())
	require.NoError(t, Put.Valid())
	require.ErrorIs(t, OptionKind("").Valid(), ErrUnknownKind)
	require.ErrorIs(t, OptionKind("call").Valid(), ErrUnknownKind)
}
