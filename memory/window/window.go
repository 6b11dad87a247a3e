//go:build unix

// Package window maps a span of physical memory into the process through a device file such as
// /dev/mem or a UIO device, and exposes it as a memory.Bus addressed by physical address.
package window

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/volmem/memory"
	"github.com/vkngwrapper/volmem/memory/internal/volatile"
	"github.com/vkngwrapper/volmem/memutils"
	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

// DefaultPath is the device file mapped when Options.Path is empty
const DefaultPath string = "/dev/mem"

// Options describes the physical window to map
type Options struct {
	// Path is the device file to map. Defaults to DefaultPath.
	Path string
	// Base is the physical address of the first byte of the window. It must be page aligned.
	Base uintptr
	// Size is the length of the window in bytes. It is rounded up to a whole number of pages.
	Size int
	// ReadOnly maps the window without write permission. Stores through a read-only window
	// fault, so descriptors over it should be built without write capability.
	ReadOnly bool
}

// Window is a memory.Bus over a mapped span of physical memory. Addresses passed to its
// methods are physical addresses within [Base, Base+Size).
type Window struct {
	logger  *slog.Logger
	options Options
	data    []byte
}

var _ memory.Bus = &Window{}
var _ memory.Pointered = &Window{}

// Open maps the window described by options
func Open(logger *slog.Logger, options Options) (*Window, error) {
	if options.Path == "" {
		options.Path = DefaultPath
	}
	if options.Size <= 0 {
		return nil, errors.Newf("window size must be positive, got %d", options.Size)
	}

	pageSize := uintptr(unix.Getpagesize())
	memutils.DebugCheckPow2(pageSize, "page size")
	if options.Base&(pageSize-1) != 0 {
		return nil, errors.Wrapf(memutils.ErrMisaligned, "window base %#x is not aligned to the %d-byte page size", options.Base, pageSize)
	}
	options.Size = int(memutils.AlignUp(uintptr(options.Size), pageSize))

	flags := os.O_RDWR | os.O_SYNC
	prot := unix.PROT_READ | unix.PROT_WRITE
	if options.ReadOnly {
		flags = os.O_RDONLY | os.O_SYNC
		prot = unix.PROT_READ
	}

	f, err := os.OpenFile(options.Path, flags, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", options.Path)
	}
	defer f.Close()

	data, err := unix.Mmap(int(f.Fd()), int64(options.Base), options.Size, prot, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to map %d bytes of %s at %#x", options.Size, options.Path, options.Base)
	}

	logger.Debug("Window::Open",
		slog.String("Path", options.Path),
		slog.String("Base", fmt.Sprintf("%#x", options.Base)),
		slog.Int("Size", options.Size),
		slog.Bool("ReadOnly", options.ReadOnly))

	return &Window{
		logger:  logger,
		options: options,
		data:    data,
	}, nil
}

// Close unmaps the window. Descriptors over the window must not be used afterward.
func (w *Window) Close() error {
	if w.data == nil {
		return nil
	}

	err := unix.Munmap(w.data)
	w.data = nil
	if err != nil {
		w.logger.Error("failed to unmap window", slog.Any("error", err))
		return errors.Wrapf(err, "failed to unmap window at %#x", w.options.Base)
	}
	return nil
}

// Base returns the physical address of the first byte of the window
func (w *Window) Base() uintptr { return w.options.Base }

// Size returns the mapped length of the window in bytes
func (w *Window) Size() int { return w.options.Size }

// Contains reports whether size bytes starting at address lie inside the window
func (w *Window) Contains(address uintptr, size int) bool {
	if address < w.options.Base {
		return false
	}
	offset := address - w.options.Base
	return offset <= uintptr(len(w.data)) && uintptr(size) <= uintptr(len(w.data))-offset
}

// Pointer translates a physical address inside the window to a pointer into the mapping.
// It panics if address is outside the window.
func (w *Window) Pointer(address uintptr) unsafe.Pointer {
	return w.pointer(address, 1)
}

func (w *Window) pointer(address uintptr, size int) unsafe.Pointer {
	if !w.Contains(address, size) {
		panic(errors.Wrapf(memutils.ErrOutOfBounds, "%d-byte access at %#x is outside window [%#x, %#x)",
			size, address, w.options.Base, w.options.Base+uintptr(len(w.data))))
	}
	return unsafe.Pointer(&w.data[address-w.options.Base])
}

func (w *Window) Load8(address uintptr) uint8 {
	return volatile.Load8(w.pointer(address, 1))
}

func (w *Window) Load16(address uintptr) uint16 {
	return volatile.Load16(w.pointer(address, 2))
}

func (w *Window) Load32(address uintptr) uint32 {
	return volatile.Load32(w.pointer(address, 4))
}

func (w *Window) Load64(address uintptr) uint64 {
	return volatile.Load64(w.pointer(address, 8))
}

func (w *Window) Store8(address uintptr, value uint8) {
	volatile.Store8(w.pointer(address, 1), value)
}

func (w *Window) Store16(address uintptr, value uint16) {
	volatile.Store16(w.pointer(address, 2), value)
}

func (w *Window) Store32(address uintptr, value uint32) {
	volatile.Store32(w.pointer(address, 4), value)
}

func (w *Window) Store64(address uintptr, value uint64) {
	volatile.Store64(w.pointer(address, 8), value)
}
