package simulated_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/volmem/memory/simulated"
)

func TestMemoryLittleEndian(t *testing.T) {
	mem := simulated.New(simulated.Options{})

	mem.Store32(0x100, 0x11223344)
	require.Equal(t, uint8(0x44), mem.Load8(0x100))
	require.Equal(t, uint8(0x11), mem.Load8(0x103))
	require.Equal(t, uint16(0x1122), mem.Load16(0x102))
	require.Equal(t, uint64(0x11223344), mem.Load64(0x100))

	require.Equal(t, 4, mem.PopulatedBytes())
	mem.Store16(0x100, 0)
	require.Equal(t, 2, mem.PopulatedBytes())
}

func TestMemoryUnwrittenReadsZero(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	require.Equal(t, uint64(0), mem.Load64(0xFFFF_0000))
	require.Equal(t, 0, mem.PopulatedBytes())
}

func TestMemoryLog(t *testing.T) {
	mem := simulated.New(simulated.Options{})

	mem.Store8(0x1, 0xAA)
	mem.Load16(0x2)

	require.Equal(t, []simulated.Access{
		{Kind: simulated.AccessStore, Address: 0x1, Size: 1, Value: 0xAA},
		{Kind: simulated.AccessLoad, Address: 0x2, Size: 2, Value: 0},
	}, mem.Log())
	require.Equal(t, "AccessStore(0x1, 1 bytes, 0xaa)", mem.Log()[0].String())

	mem.ResetLog()
	require.Empty(t, mem.Log())

	quiet := simulated.New(simulated.Options{DisableLog: true})
	quiet.Store8(0x1, 1)
	require.Empty(t, quiet.Log())
}

func TestMemoryReadToClear(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	mem.OnLoad(0x10, func(m *simulated.Memory, address uintptr, value uint64) uint64 {
		m.Poke(address, 4, 0)
		return value
	})

	mem.Store32(0x10, 0x3)
	require.Equal(t, uint32(0x3), mem.Load32(0x10))
	require.Equal(t, uint32(0), mem.Load32(0x10))
}

func TestMemoryWriteOneToClear(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	mem.OnStore(0x20, func(m *simulated.Memory, address uintptr, value uint64) {
		m.Poke(address, 2, m.Peek(address, 2)&^value)
	})

	mem.Poke(0x20, 2, 0b1011)
	mem.Store16(0x20, 0b0010)
	require.Equal(t, uint16(0b1001), mem.Load16(0x20))

	log := mem.Log()
	require.Len(t, log, 2)
	require.Equal(t, uint64(0b0010), log[0].Value)
}

func TestMemoryFill(t *testing.T) {
	mem := simulated.New(simulated.Options{})
	mem.Fill(0x40, 4, 0xFF)

	require.Equal(t, uint32(0xFFFFFFFF), mem.Load32(0x40))
	require.Equal(t, uint8(0), mem.Load8(0x44))
	require.Len(t, mem.Log(), 2)
}

func TestMemorySynchronized(t *testing.T) {
	mem := simulated.New(simulated.Options{Synchronized: true})

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				mem.Store32(uintptr(worker*0x1000+i*4), uint32(i))
			}
		}(worker)
	}
	wg.Wait()

	require.Len(t, mem.Log(), 800)
	require.Equal(t, uint32(99), mem.Load32(7*0x1000+99*4))
}
