package memutils_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/volmem/memutils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(1, "one"))
	require.NoError(t, memutils.CheckPow2(uintptr(4096), "page"))

	err := memutils.CheckPow2(12, "alignment")
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
	require.Contains(t, err.Error(), "alignment is 12")

	require.Error(t, memutils.CheckPow2(0, "zero"))
}

func TestCheckAddress(t *testing.T) {
	require.NoError(t, memutils.CheckAddress(0x1000, 4))
	require.NoError(t, memutils.CheckAddress(0x1001, 1))
	require.ErrorIs(t, memutils.CheckAddress(0, 4), memutils.ErrNullAddress)
	require.ErrorIs(t, memutils.CheckAddress(0x1002, 4), memutils.ErrMisaligned)
}

func TestCheckBounds(t *testing.T) {
	require.NoError(t, memutils.CheckBounds(0, 1))
	require.ErrorIs(t, memutils.CheckBounds(1, 1), memutils.ErrOutOfBounds)
	require.ErrorIs(t, memutils.CheckBounds(-1, 1), memutils.ErrOutOfBounds)
}

func TestOffsetAddress(t *testing.T) {
	address, err := memutils.OffsetAddress(0x1000, 3, 4)
	require.NoError(t, err)
	require.Equal(t, uintptr(0x100C), address)

	_, err = memutils.OffsetAddress(^uintptr(0)-3, 1, 4)
	require.ErrorIs(t, err, memutils.ErrOverflow)

	_, err = memutils.OffsetAddress(0x1000, math.MaxInt, 4)
	require.ErrorIs(t, err, memutils.ErrOverflow)

	_, err = memutils.OffsetAddress(0x1000, -1, 4)
	require.ErrorIs(t, err, memutils.ErrOutOfBounds)
}

func TestUintptrArithmetic(t *testing.T) {
	product, ok := memutils.MulUintptr(1<<20, 1<<10)
	require.True(t, ok)
	require.Equal(t, uintptr(1<<30), product)

	_, ok = memutils.MulUintptr(^uintptr(0), 2)
	require.False(t, ok)

	sum, ok := memutils.AddUintptr(^uintptr(0)-1, 1)
	require.True(t, ok)
	require.Equal(t, ^uintptr(0), sum)

	_, ok = memutils.AddUintptr(^uintptr(0), 1)
	require.False(t, ok)
}

func TestAlign(t *testing.T) {
	require.Equal(t, uintptr(0x2000), memutils.AlignUp(0x1001, 0x1000))
	require.Equal(t, uintptr(0x1000), memutils.AlignUp(0x1000, 0x1000))
	require.Equal(t, uintptr(0x1000), memutils.AlignDown(0x1FFF, 0x1000))
}

func TestDetailedAccessStatistics(t *testing.T) {
	var stats memutils.DetailedAccessStatistics
	stats.Clear()

	stats.AddLoad(0x100, 4)
	stats.AddStore(0x80, 2)

	var other memutils.DetailedAccessStatistics
	other.Clear()
	other.AddStore(0x400, 8)
	stats.AddDetailedStatistics(&other)

	require.Equal(t, memutils.AccessStatistics{
		LoadCount:  1,
		StoreCount: 2,
		LoadBytes:  4,
		StoreBytes: 10,
	}, stats.AccessStatistics)
	require.Equal(t, uintptr(0x80), stats.LowestAddress)
	require.Equal(t, uintptr(0x407), stats.HighestAddress)
}
