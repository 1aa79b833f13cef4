package mathx

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"boardcore/assert"
)

func TestRoundDivTies(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{0, 3, 0},
		{1, 3, 0},
		{2, 3, 1},
		{3, 2, 2}, // 1.5 rounds up
		{5, 2, 3}, // 2.5 rounds up
		{16_000_000, 32768, 488},
		{7, 7, 1},
	}
	for _, c := range cases {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Fatalf("RoundDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestRoundDivMatchesBigRat(t *testing.T) {
	for b := uint64(1); b < 2000; b += 7 {
		for a := uint64(0); a < 5000; a += 13 {
			r := new(big.Rat).SetFrac(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
			r.Add(r, big.NewRat(1, 2))
			want := new(big.Int).Quo(r.Num(), r.Denom()).Uint64()
			require.Equal(t, want, RoundDiv(a, b), "a=%d b=%d", a, b)
		}
	}
}

func TestCeilAndFloorDiv(t *testing.T) {
	require.Equal(t, uint16(3), CeilDiv[uint16](7, 3))
	require.Equal(t, uint16(2), FloorDiv[uint16](7, 3))
	require.Equal(t, uint16(0), CeilDiv[uint16](0, 3))
	require.Equal(t, uint8(1), CeilDiv[uint8](1, 200))
}

func TestDivideByZeroTrips(t *testing.T) {
	defer assert.SetWriter(func(string) {})()
	require.Panics(t, func() { RoundDiv[uint32](10, 0) })
	require.Panics(t, func() { CeilDiv[uint32](10, 0) })
	require.Panics(t, func() { FloorDiv[uint32](10, 0) })
}

func TestClampMinMaxAbsDiff(t *testing.T) {
	require.Equal(t, 5, Clamp(9, 0, 5))
	require.Equal(t, 0, Clamp(-3, 5, 0))
	require.Equal(t, uint8(2), Min[uint8](2, 9))
	require.Equal(t, uint8(9), Max[uint8](2, 9))
	require.Equal(t, uint32(7), AbsDiff[uint32](3, 10))
	require.Equal(t, uint32(7), AbsDiff[uint32](10, 3))
}
