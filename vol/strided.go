package vol

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/volmem/memory"
	"github.com/vkngwrapper/volmem/memutils"
)

// StridedGrid2D is a stack of Frames() Grid2D frames, each Width() by Height(), whose bases are
// FrameStride() bytes apart. The frame stride is independent of the frame size: frames may be
// padded apart, packed back to back, or deliberately overlap (as with double-buffered video memory
// where a scroll offset picks the visible frame). All three are valid.
type StridedGrid2D[T Word, R, W Permission] struct {
	base        Address[T, R, W]
	width       int
	height      int
	frames      int
	frameStride uintptr
}

// NewStridedGrid2D creates a StridedGrid2D starting at base. This is the trusted step: the caller
// promises every cell of every frame is a valid location under the same terms as New. It panics if
// a dimension is negative or the last frame would run past the end of the address space.
func NewStridedGrid2D[T Word, R, W Permission](bus memory.Bus, base uintptr, width, height, frames int, frameStride uintptr) StridedGrid2D[T, R, W] {
	cells := cellCount(width, height)
	if frames < 0 {
		panic(errors.Newf("vol: negative frame count %d", frames))
	}
	if frames > 0 {
		last, err := memutils.OffsetAddress(base, frames-1, frameStride)
		if err != nil {
			panic(errors.Wrapf(err, "vol: %d frames of stride %d at %#x", frames, frameStride, base))
		}
		if cells > 0 {
			_, err = memutils.OffsetAddress(last, cells-1, sizeOf[T]())
			if err != nil {
				panic(errors.Wrapf(err, "vol: final frame at %#x", last))
			}
		}
	}
	memutils.DebugCheckAddress(base, sizeOf[T]())
	if memutils.DebugChecksEnabled && frameStride%sizeOf[T]() != 0 {
		panic(errors.Wrapf(memutils.ErrMisaligned, "vol: frame stride %d for %d-byte elements", frameStride, sizeOf[T]()))
	}

	return StridedGrid2D[T, R, W]{
		base:        Address[T, R, W]{bus: bus, address: base},
		width:       width,
		height:      height,
		frames:      frames,
		frameStride: frameStride,
	}
}

func (g StridedGrid2D[T, R, W]) Width() int  { return g.width }
func (g StridedGrid2D[T, R, W]) Height() int { return g.height }
func (g StridedGrid2D[T, R, W]) Frames() int { return g.frames }

// FrameStride returns the distance in bytes between the bases of consecutive frames
func (g StridedGrid2D[T, R, W]) FrameStride() uintptr { return g.frameStride }

// Uintptr returns the base address of frame 0
func (g StridedGrid2D[T, R, W]) Uintptr() uintptr { return g.base.address }

// Span returns the first byte covered and the number of bytes from there to the end of the last
// frame
func (g StridedGrid2D[T, R, W]) Span() (uintptr, uintptr) {
	cells := g.width * g.height
	if g.frames == 0 || cells == 0 {
		return g.base.address, 0
	}
	return g.base.address, uintptr(g.frames-1)*g.frameStride + uintptr(cells)*sizeOf[T]()
}

// FrameBase returns base + frame*FrameStride(), or false if frame is out of range
func (g StridedGrid2D[T, R, W]) FrameBase(frame int) (uintptr, bool) {
	if frame < 0 || frame >= g.frames {
		return 0, false
	}
	return g.base.address + uintptr(frame)*g.frameStride, true
}

// Frame returns frame as a Grid2D, or false if frame is out of range
func (g StridedGrid2D[T, R, W]) Frame(frame int) (Grid2D[T, R, W], bool) {
	base, ok := g.FrameBase(frame)
	if !ok {
		return Grid2D[T, R, W]{}, false
	}

	return Grid2D[T, R, W]{
		cells: span[T, R, W]{
			base:   Address[T, R, W]{bus: g.base.bus, address: base},
			length: g.width * g.height,
			stride: sizeOf[T](),
		},
		width:  g.width,
		height: g.height,
	}, true
}

// Get returns the Address of cell (x, y) in frame, or false if any coordinate is out of range
func (g StridedGrid2D[T, R, W]) Get(frame, x, y int) (Address[T, R, W], bool) {
	grid, ok := g.Frame(frame)
	if !ok {
		return Address[T, R, W]{}, false
	}
	return grid.Get(x, y)
}

// String renders the base address alone
func (g StridedGrid2D[T, R, W]) String() string {
	return g.base.String()
}

// GoString renders the grid with its element type, capabilities and shape, for %#v
func (g StridedGrid2D[T, R, W]) GoString() string {
	return fmt.Sprintf("vol.StridedGrid2D[%s](%#x, %dx%d, frames: %d, stride: %#x)",
		typeParams[T, R, W](), g.base.address, g.width, g.height, g.frames, g.frameStride)
}

// DescribeJSON populates a json object with the grid's address, element type, capabilities and shape
func (g StridedGrid2D[T, R, W]) DescribeJSON(json *jwriter.ObjectState) {
	describeCommon[T, R, W](json, "StridedGrid2D", g.base.address)
	json.Name("Width").Int(g.width)
	json.Name("Height").Int(g.height)
	json.Name("Frames").Int(g.frames)
	json.Name("FrameStride").Int(int(g.frameStride))
}

// Grid3D is a StridedGrid2D whose frames are packed back to back, so that cell (x, y) of frame z
// lives at element z*width*height + y*width + x.
type Grid3D[T Word, R, W Permission] struct {
	StridedGrid2D[T, R, W]
}

// NewGrid3D creates a Grid3D starting at base. See NewStridedGrid2D.
func NewGrid3D[T Word, R, W Permission](bus memory.Bus, base uintptr, width, height, frames int) Grid3D[T, R, W] {
	frameBytes, ok := memutils.MulUintptr(uintptr(cellCount(width, height)), sizeOf[T]())
	if !ok {
		panic(errors.Wrapf(memutils.ErrOverflow, "vol: %dx%d frame size", width, height))
	}
	return Grid3D[T, R, W]{
		StridedGrid2D: NewStridedGrid2D[T, R, W](bus, base, width, height, frames, frameBytes),
	}
}

// GoString renders the grid with its element type, capabilities and shape, for %#v
func (g Grid3D[T, R, W]) GoString() string {
	return fmt.Sprintf("vol.Grid3D[%s](%#x, %dx%dx%d)",
		typeParams[T, R, W](), g.base.address, g.width, g.height, g.frames)
}

// DescribeJSON populates a json object with the grid's address, element type, capabilities and shape
func (g Grid3D[T, R, W]) DescribeJSON(json *jwriter.ObjectState) {
	describeCommon[T, R, W](json, "Grid3D", g.base.address)
	json.Name("Width").Int(g.width)
	json.Name("Height").Int(g.height)
	json.Name("Frames").Int(g.frames)
}
