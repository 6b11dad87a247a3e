//go:build unix

package window_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/volmem/memory/window"
	"github.com/vkngwrapper/volmem/memutils"
	"github.com/vkngwrapper/volmem/vol"
	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

func backingFile(t *testing.T, size int) string {
	path := filepath.Join(t.TempDir(), "device")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func TestWindowRoundTrip(t *testing.T) {
	pageSize := uintptr(unix.Getpagesize())
	path := backingFile(t, int(pageSize)*2)

	var buffer bytes.Buffer
	logger := slog.New(slog.HandlerOptions{Level: slog.LevelDebug}.NewTextHandler(&buffer))

	w, err := window.Open(logger, window.Options{Path: path, Base: pageSize, Size: 64})
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close()) }()

	require.Equal(t, pageSize, w.Base())
	require.Equal(t, int(pageSize), w.Size())
	require.Contains(t, buffer.String(), "Window::Open")

	control := vol.NewReadWrite[uint32](w, pageSize+0x10)
	vol.Write(control, 0xA5A5F00D)
	require.Equal(t, uint32(0xA5A5F00D), vol.Read(control))
	require.NotNil(t, control.Pointer())

	block := vol.NewBlock[uint8, vol.Safe, vol.Safe](w, pageSize+0x20, 4)
	vol.WriteSlice(block.AsRegion(), []uint8{1, 2, 3, 4})
	require.Equal(t, []uint8{1, 2, 3, 4}, block.UnsafeSlice())

	require.True(t, w.Contains(pageSize, int(pageSize)))
	require.False(t, w.Contains(pageSize, int(pageSize)+1))
	require.False(t, w.Contains(pageSize-1, 1))
	require.Panics(t, func() { w.Load32(pageSize * 2) })
	require.Panics(t, func() { w.Load8(0) })

	require.NoError(t, w.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, binary.NativeEndian.AppendUint32(nil, 0xA5A5F00D), contents[pageSize+0x10:pageSize+0x14])
	require.Equal(t, []byte{1, 2, 3, 4}, contents[pageSize+0x20:pageSize+0x24])
}

func TestWindowOptionChecks(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}))
	path := backingFile(t, unix.Getpagesize())

	_, err := window.Open(logger, window.Options{Path: path, Size: 0})
	require.Error(t, err)

	_, err = window.Open(logger, window.Options{Path: path, Base: 3, Size: 16})
	require.ErrorIs(t, err, memutils.ErrMisaligned)

	_, err = window.Open(logger, window.Options{Path: filepath.Join(t.TempDir(), "missing"), Size: 16})
	require.Error(t, err)
}

func TestWindowReadOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}))
	path := backingFile(t, unix.Getpagesize())
	contents := make([]byte, unix.Getpagesize())
	binary.NativeEndian.PutUint16(contents, 0x1234)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	w, err := window.Open(logger, window.Options{Path: path, Base: 0, Size: 2, ReadOnly: true})
	require.NoError(t, err)
	defer w.Close()

	require.Equal(t, uint16(0x1234), w.Load16(0))
}
