package vol_test

import (
	"fmt"

	"github.com/vkngwrapper/volmem/memory/simulated"
	"github.com/vkngwrapper/volmem/vol"
)

func ExampleBlock() {
	mem := simulated.New(simulated.Options{})
	palette := vol.NewBlock[uint32, vol.Safe, vol.Safe](mem, 0x1000, 8)

	it := palette.Iter()
	for i, addr := range it.All() {
		vol.Write(addr, uint32(i*i))
	}

	third, _ := palette.Get(3)
	_, ok := palette.Get(8)
	fmt.Println(third, vol.Read(third), ok)
	fmt.Println(len(mem.Log()))
	// Output:
	// 0x100c 9 false
	// 9
}

func ExampleIter_Nth() {
	mem := simulated.New(simulated.Options{})
	it := vol.NewBlock[uint16, vol.Safe, vol.No](mem, 0x2000, 4).Iter()

	first, _ := it.Nth(1)
	_, ok := it.Nth(5)
	fmt.Println(first, ok, it.Len())
	// Output:
	// 0x2002 false 0
}
