package vol

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/volmem/memory"
	"github.com/vkngwrapper/volmem/memutils"
)

func cellCount(width, height int) int {
	if width < 0 || height < 0 {
		panic(errors.Newf("vol: negative grid dimensions %dx%d", width, height))
	}
	count, ok := memutils.MulUintptr(uintptr(width), uintptr(height))
	if !ok || count > math.MaxInt {
		panic(errors.Wrapf(memutils.ErrOverflow, "vol: grid dimensions %dx%d", width, height))
	}
	return int(count)
}

// Grid2D is a width by height array of packed volatile locations laid out row after row, the
// way a simple framebuffer or tile map is. Cell (x, y) lives at element y*width + x.
type Grid2D[T Word, R, W Permission] struct {
	cells  span[T, R, W]
	width  int
	height int
}

// NewGrid2D creates a Grid2D starting at base. This is the trusted step: the caller promises every
// cell is a valid location under the same terms as New. It panics if a dimension is negative or
// the grid would run past the end of the address space.
func NewGrid2D[T Word, R, W Permission](bus memory.Bus, base uintptr, width, height int) Grid2D[T, R, W] {
	return Grid2D[T, R, W]{
		cells:  newSpan(Address[T, R, W]{bus: bus, address: base}, cellCount(width, height), sizeOf[T]()),
		width:  width,
		height: height,
	}
}

// GridFromBlock views a packed Block as a Grid2D. It panics unless the Block is packed and holds
// exactly width*height elements.
func GridFromBlock[T Word, R, W Permission](b Block[T, R, W], width, height int) Grid2D[T, R, W] {
	count := cellCount(width, height)
	if b.length != count {
		panic(errors.Newf("vol: block of %d elements cannot be a %dx%d grid", b.length, width, height))
	}
	if b.stride != sizeOf[T]() {
		panic(errors.Newf("vol: block stride %d is not packed for %d-byte elements", b.stride, sizeOf[T]()))
	}
	return Grid2D[T, R, W]{cells: b.span, width: width, height: height}
}

func (g Grid2D[T, R, W]) Width() int  { return g.width }
func (g Grid2D[T, R, W]) Height() int { return g.height }

// Uintptr returns the address of cell (0, 0)
func (g Grid2D[T, R, W]) Uintptr() uintptr { return g.cells.base.address }

// Span returns the first byte covered and the number of bytes covered
func (g Grid2D[T, R, W]) Span() (uintptr, uintptr) { return g.cells.Span() }

// Get returns the Address of cell (x, y), or false if either coordinate is out of range
func (g Grid2D[T, R, W]) Get(x, y int) (Address[T, R, W], bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Address[T, R, W]{}, false
	}
	return g.cells.at(y*g.width + x), true
}

// Index returns the Address of cell (x, y) and panics if either coordinate is out of range
func (g Grid2D[T, R, W]) Index(x, y int) Address[T, R, W] {
	address, ok := g.Get(x, y)
	if !ok {
		panic(errors.Wrapf(memutils.ErrOutOfBounds, "vol: cell (%d, %d) of %dx%d grid", x, y, g.width, g.height))
	}
	return address
}

// Row returns row y as a Block of Width() elements, or false if y is out of range
func (g Grid2D[T, R, W]) Row(y int) (Block[T, R, W], bool) {
	if y < 0 || y >= g.height {
		return Block[T, R, W]{}, false
	}

	row := g.cells
	row.base = g.cells.at(y * g.width)
	row.length = g.width
	return Block[T, R, W]{span: row}, true
}

// AsBlock returns every cell as one Block in row-major order
func (g Grid2D[T, R, W]) AsBlock() Block[T, R, W] {
	return Block[T, R, W]{span: g.cells}
}

// Iter returns an iterator over every cell in row-major order
func (g Grid2D[T, R, W]) Iter() Iter[T, R, W] {
	return g.cells.Iter()
}

// String renders the base address alone
func (g Grid2D[T, R, W]) String() string {
	return g.cells.base.String()
}

// GoString renders the grid with its element type, capabilities and shape, for %#v
func (g Grid2D[T, R, W]) GoString() string {
	return fmt.Sprintf("vol.Grid2D[%s](%#x, %dx%d)", typeParams[T, R, W](), g.cells.base.address, g.width, g.height)
}

// DescribeJSON populates a json object with the grid's address, element type, capabilities and shape
func (g Grid2D[T, R, W]) DescribeJSON(json *jwriter.ObjectState) {
	describeCommon[T, R, W](json, "Grid2D", g.cells.base.address)
	json.Name("Width").Int(g.width)
	json.Name("Height").Int(g.height)
}
