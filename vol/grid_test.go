package vol_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/volmem/memory/simulated"
	"github.com/vkngwrapper/volmem/vol"
)

func TestGrid2DAddressLaw(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	const width, height = 240, 160
	grid := vol.NewGrid2D[color, vol.Safe, vol.Safe](mem, 0x0600_0000, width, height)

	require.Equal(t, width, grid.Width())
	require.Equal(t, height, grid.Height())

	for y := 0; y < height; y += 7 {
		for x := 0; x < width; x += 11 {
			address, ok := grid.Get(x, y)
			require.True(t, ok)
			require.Equal(t, 0x0600_0000+uintptr(y*width+x)*2, address.Uintptr())
		}
	}

	for _, coords := range [][2]int{{width, 0}, {0, height}, {-1, 0}, {0, -1}, {width, height}} {
		_, ok := grid.Get(coords[0], coords[1])
		require.False(t, ok)
		require.Panics(t, func() { grid.Index(coords[0], coords[1]) })
	}

	require.Empty(t, mem.Log())
}

func TestGrid2DRoundTrip(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	grid := vol.NewGrid2D[color, vol.Safe, vol.Safe](mem, 0x0600_0000, 4, 3)

	vol.Write(grid.Index(2, 1), color(0x001F))
	require.Equal(t, uint64(0x001F), mem.Peek(0x0600_0000+(1*4+2)*2, 2))
	require.Equal(t, color(0x001F), vol.Read(grid.Index(2, 1)))
}

func TestGrid2DRows(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	grid := vol.NewGrid2D[uint8, vol.Safe, vol.Safe](mem, 0x100, 10, 5)

	row, ok := grid.Row(3)
	require.True(t, ok)
	require.Equal(t, 10, row.Len())
	require.Equal(t, uintptr(0x100+30), row.Uintptr())

	last, ok := row.Get(9)
	require.True(t, ok)
	cell, _ := grid.Get(9, 3)
	require.Equal(t, cell, last)

	_, ok = grid.Row(5)
	require.False(t, ok)
	_, ok = grid.Row(-1)
	require.False(t, ok)
}

func TestGrid2DBlockConversions(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	block := vol.NewBlock[uint16, vol.Safe, vol.No](mem, 0x400, 12)

	grid := vol.GridFromBlock(block, 4, 3)
	cell, ok := grid.Get(1, 2)
	require.True(t, ok)
	element, _ := block.Get(9)
	require.Equal(t, element, cell)

	require.Equal(t, block, grid.AsBlock())

	require.Panics(t, func() { vol.GridFromBlock(block, 4, 4) })
	require.Panics(t, func() {
		vol.GridFromBlock(vol.NewStridedBlock[uint16, vol.Safe, vol.No](mem, 0x400, 12, 4), 4, 3)
	})

	it := grid.Iter()
	require.Equal(t, 12, it.Len())
	fifth, ok := it.Nth(5)
	require.True(t, ok)
	require.Equal(t, uintptr(0x40A), fifth.Uintptr())
}

func TestGrid2DConstructionChecks(t *testing.T) {
	mem := simulated.New(simulated.Options{})

	require.Panics(t, func() { vol.NewGrid2D[uint8, vol.Safe, vol.Safe](mem, 0x10, -1, 4) })
	require.Panics(t, func() { vol.NewGrid2D[uint8, vol.Safe, vol.Safe](mem, 0x10, math.MaxInt/2, 3) })
}

func TestGrid2DFormatting(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	grid := vol.NewGrid2D[uint16, vol.Safe, vol.Safe](mem, 0x0600_0000, 240, 160)

	require.Equal(t, "0x6000000", grid.String())
	require.Equal(t, "vol.Grid2D[uint16, Safe, Safe](0x6000000, 240x160)", fmt.Sprintf("%#v", grid))
}

func TestStridedGrid2DFrames(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	small := vol.NewStridedGrid2D[uint8, vol.Safe, vol.Safe](mem, 0x1000, 10, 10, 6, 0x100)

	for frame := 0; frame < 6; frame++ {
		grid, ok := small.Frame(frame)
		require.True(t, ok)
		require.Equal(t, uintptr(0x1000+frame*0x100), grid.Uintptr())

		base, ok := small.FrameBase(frame)
		require.True(t, ok)
		require.Equal(t, grid.Uintptr(), base)
	}

	_, ok := small.Frame(6)
	require.False(t, ok)
	_, ok = small.FrameBase(-1)
	require.False(t, ok)

	cell, ok := small.Get(2, 3, 4)
	require.True(t, ok)
	require.Equal(t, uintptr(0x1200+4*10+3), cell.Uintptr())
	_, ok = small.Get(2, 10, 0)
	require.False(t, ok)
}

func TestStridedGrid2DFrameBasesDistinct(t *testing.T) {
	mem := simulated.New(simulated.Options{})

	// padded, packed and overlapping frames of a 4x4 uint16 grid (32 bytes per frame)
	for _, stride := range []uintptr{0x40, 0x20, 0x10, 0x2} {
		grid := vol.NewStridedGrid2D[uint16, vol.Safe, vol.Safe](mem, 0x8000, 4, 4, 5, stride)

		seen := make(map[uintptr]int)
		for frame := 0; frame < grid.Frames(); frame++ {
			base, ok := grid.FrameBase(frame)
			require.True(t, ok)
			require.Equal(t, 0x8000+uintptr(frame)*stride, base)

			previous, exists := seen[base]
			require.False(t, exists, "frames %d and %d share base %#x", previous, frame, base)
			seen[base] = frame
		}
	}
}

func TestStridedGrid2DOverlappingFrames(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	grid := vol.NewStridedGrid2D[uint16, vol.Safe, vol.Safe](mem, 0x8000, 4, 4, 2, 0x10)

	frame0, _ := grid.Frame(0)
	frame1, _ := grid.Frame(1)

	vol.Write(frame1.Index(0, 0), 0xBEEF)
	require.Equal(t, uint16(0xBEEF), vol.Read(frame0.Index(0, 2)))

	start, size := grid.Span()
	require.Equal(t, uintptr(0x8000), start)
	require.Equal(t, uintptr(0x10+0x20), size)
}

func TestStridedGrid2DConstructionChecks(t *testing.T) {
	mem := simulated.New(simulated.Options{})

	require.Panics(t, func() {
		vol.NewStridedGrid2D[uint8, vol.Safe, vol.Safe](mem, 0x10, 4, 4, -1, 0x10)
	})
	require.Panics(t, func() {
		vol.NewStridedGrid2D[uint8, vol.Safe, vol.Safe](mem, 0x10, 4, 4, 3, ^uintptr(0)/2)
	})

	empty := vol.NewStridedGrid2D[uint8, vol.Safe, vol.Safe](mem, 0x10, 4, 4, 0, 0x10)
	_, ok := empty.Frame(0)
	require.False(t, ok)
}

func TestGrid3D(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	grid := vol.NewGrid3D[uint32, vol.Safe, vol.Safe](mem, 0x10000, 8, 4, 3)

	require.Equal(t, uintptr(8*4*4), grid.FrameStride())

	frame, ok := grid.Frame(2)
	require.True(t, ok)
	require.Equal(t, uintptr(0x10000+2*128), frame.Uintptr())

	cell, ok := grid.Get(1, 7, 3)
	require.True(t, ok)
	require.Equal(t, uintptr(0x10000+(1*32+3*8+7)*4), cell.Uintptr())

	_, ok = grid.Frame(3)
	require.False(t, ok)

	require.Equal(t, "vol.Grid3D[uint32, Safe, Safe](0x10000, 8x4x3)", fmt.Sprintf("%#v", grid))
}
