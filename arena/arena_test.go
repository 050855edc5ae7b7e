package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat64ArenaAllocAdvancesBumpPointer(t *testing.T) {
	a := NewFloat64Arena(16)
	s1 := a.Alloc(4)
	require.Len(t, s1, 4)
	require.Equal(t, 4, a.Used())

	s2 := a.Alloc(4)
	require.Len(t, s2, 4)
	require.Equal(t, 8, a.Used())

	s1[0] = 1
	s2[0] = 2
	require.Equal(t, 1.0, s1[0])
	require.Equal(t, 2.0, s2[0])
}

func TestFloat64ArenaResetReclaimsCapacity(t *testing.T) {
	a := NewFloat64Arena(8)
	a.Alloc(8)
	require.Equal(t, 8, a.Used())

	a.Reset()
	require.Equal(t, 0, a.Used())
	require.NotPanics(t, func() { a.Alloc(8) })
}

func TestFloat64ArenaAllocFallsBackToHeapOnOverflow(t *testing.T) {
	a := NewFloat64Arena(4)
	a.Alloc(4)
	var s []float64
	require.NotPanics(t, func() { s = a.Alloc(2) })
	require.Len(t, s, 2)
	require.Equal(t, 4, a.Used())
}

func TestFloat64ArenaAllocZeroesReturnedSlice(t *testing.T) {
	a := NewFloat64Arena(4)
	s := a.Alloc(4)
	for i := range s {
		s[i] = 9
	}
	a.Reset()
	s2 := a.Alloc(4)
	for _, v := range s2 {
		require.Equal(t, 0.0, v)
	}
}

func TestIntArenaAllocAndReset(t *testing.T) {
	a := NewIntArena(4)
	s := a.Alloc(2)
	require.Len(t, s, 2)
	require.Equal(t, 2, a.Used())
	a.Reset()
	require.Equal(t, 0, a.Used())
}

func TestFloat64PoolGetReturnsZeroedFixedLength(t *testing.T) {
	p := NewFloat64Pool(3)
	s := p.Get()
	require.Len(t, s, 3)
	for _, v := range s {
		require.Equal(t, 0.0, v)
	}
	s[0] = 5
	p.Put(s)

	s2 := p.Get()
	require.Len(t, s2, 3)
	require.Equal(t, 0.0, s2[0]) // reused buffer is re-zeroed on Get
}

func TestFloat64PoolPutIgnoresMismatchedLength(t *testing.T) {
	p := NewFloat64Pool(3)
	require.NotPanics(t, func() { p.Put(make([]float64, 5)) })
}
