// Package simulated provides an in-memory Bus that stands in for device memory in tests. It keeps
// sparse little-endian byte storage, logs every access with its exact width, and can run hooks on
// individual addresses to imitate registers whose reads or writes have side effects.
package simulated

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/volmem/memory"
	"github.com/vkngwrapper/volmem/memory/internal/utils"
)

// AccessKind distinguishes loads from stores in the access log
type AccessKind byte

const (
	AccessLoad AccessKind = iota
	AccessStore
)

var accessKindMapping = make(map[AccessKind]string)

func (k AccessKind) String() string {
	return accessKindMapping[k]
}

func init() {
	accessKindMapping[AccessLoad] = "AccessLoad"
	accessKindMapping[AccessStore] = "AccessStore"
}

// Access is a single entry in the access log
type Access struct {
	Kind    AccessKind
	Address uintptr
	Size    int
	Value   uint64
}

func (a Access) String() string {
	return fmt.Sprintf("%s(%#x, %d bytes, %#x)", a.Kind, a.Address, a.Size, a.Value)
}

// LoadHook runs after a load at a hooked address has read its value. The returned value is
// what the load yields; the hook may modify memory, e.g. to clear a read-to-clear register.
type LoadHook func(m *Memory, address uintptr, value uint64) uint64

// StoreHook runs in place of the default store at a hooked address. It receives the value being
// stored and is responsible for updating memory, e.g. to implement write-one-to-clear bits.
type StoreHook func(m *Memory, address uintptr, value uint64)

// Options contains optional settings when creating a Memory
type Options struct {
	// Synchronized causes the Memory to lock around every access, so that it can be shared by
	// goroutines. Device memory offers no such guarantee, so this defaults to off.
	Synchronized bool
	// DisableLog stops the Memory from recording accesses
	DisableLog bool
	// InitialCapacity is a hint for the number of bytes that will be populated
	InitialCapacity uint32
}

// Memory is a sparse, byte-addressed simulated device memory. Unwritten bytes read as zero.
type Memory struct {
	mutex utils.OptionalMutex

	bytes      *swiss.Map[uintptr, byte]
	loadHooks  *swiss.Map[uintptr, LoadHook]
	storeHooks *swiss.Map[uintptr, StoreHook]

	logEnabled bool
	log        []Access
}

var _ memory.Bus = &Memory{}

// New creates an empty Memory
func New(options Options) *Memory {
	capacity := options.InitialCapacity
	if capacity == 0 {
		capacity = 64
	}

	return &Memory{
		mutex:      utils.OptionalMutex{UseMutex: options.Synchronized},
		bytes:      swiss.NewMap[uintptr, byte](capacity),
		loadHooks:  swiss.NewMap[uintptr, LoadHook](8),
		storeHooks: swiss.NewMap[uintptr, StoreHook](8),
		logEnabled: !options.DisableLog,
	}
}

// OnLoad installs a hook for loads that start at address
func (m *Memory) OnLoad(address uintptr, hook LoadHook) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.loadHooks.Put(address, hook)
}

// OnStore installs a hook for stores that start at address
func (m *Memory) OnStore(address uintptr, hook StoreHook) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.storeHooks.Put(address, hook)
}

// Peek reads size bytes at address without logging or running hooks. Hooks use it to inspect
// the current contents of memory. Peek and Poke never lock, so outside of a hook they are only
// safe while no other goroutine is using the Memory.
func (m *Memory) Peek(address uintptr, size int) uint64 {
	var value uint64
	for i := size - 1; i >= 0; i-- {
		b, _ := m.bytes.Get(address + uintptr(i))
		value = value<<8 | uint64(b)
	}
	return value
}

// Poke writes the low size bytes of value at address without logging or running hooks
func (m *Memory) Poke(address uintptr, size int, value uint64) {
	for i := 0; i < size; i++ {
		b := byte(value >> (8 * i))
		if b == 0 {
			m.bytes.Delete(address + uintptr(i))
		} else {
			m.bytes.Put(address+uintptr(i), b)
		}
	}
}

// Fill populates count bytes starting at address with value, without logging
func (m *Memory) Fill(address uintptr, count int, value byte) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := 0; i < count; i++ {
		m.Poke(address+uintptr(i), 1, uint64(value))
	}
}

// Log returns a copy of the accesses recorded since creation or the last ResetLog
func (m *Memory) Log() []Access {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]Access, len(m.log))
	copy(out, m.log)
	return out
}

func (m *Memory) ResetLog() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.log = m.log[:0]
}

// PopulatedBytes returns the number of nonzero bytes currently stored
func (m *Memory) PopulatedBytes() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.bytes.Count()
}

func (m *Memory) load(address uintptr, size int) uint64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	value := m.Peek(address, size)
	if hook, ok := m.loadHooks.Get(address); ok {
		value = hook(m, address, value)
	}

	if m.logEnabled {
		m.log = append(m.log, Access{Kind: AccessLoad, Address: address, Size: size, Value: value})
	}
	return value
}

func (m *Memory) store(address uintptr, size int, value uint64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if hook, ok := m.storeHooks.Get(address); ok {
		hook(m, address, value)
	} else {
		m.Poke(address, size, value)
	}

	if m.logEnabled {
		m.log = append(m.log, Access{Kind: AccessStore, Address: address, Size: size, Value: value})
	}
}

func (m *Memory) Load8(address uintptr) uint8   { return uint8(m.load(address, 1)) }
func (m *Memory) Load16(address uintptr) uint16 { return uint16(m.load(address, 2)) }
func (m *Memory) Load32(address uintptr) uint32 { return uint32(m.load(address, 4)) }
func (m *Memory) Load64(address uintptr) uint64 { return m.load(address, 8) }

func (m *Memory) Store8(address uintptr, value uint8)   { m.store(address, 1, uint64(value)) }
func (m *Memory) Store16(address uintptr, value uint16) { m.store(address, 2, uint64(value)) }
func (m *Memory) Store32(address uintptr, value uint32) { m.store(address, 4, uint64(value)) }
func (m *Memory) Store64(address uintptr, value uint64) { m.store(address, 8, value) }
