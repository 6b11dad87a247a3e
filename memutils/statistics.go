package memutils

import (
	"fmt"
	"math"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// AccessStatistics counts volatile accesses performed through a bus
type AccessStatistics struct {
	LoadCount  int
	StoreCount int
	LoadBytes  int
	StoreBytes int
}

func (s *AccessStatistics) Clear() {
	s.LoadCount = 0
	s.StoreCount = 0
	s.LoadBytes = 0
	s.StoreBytes = 0
}

func (s *AccessStatistics) AddLoad(size int) {
	s.LoadCount++
	s.LoadBytes += size
}

func (s *AccessStatistics) AddStore(size int) {
	s.StoreCount++
	s.StoreBytes += size
}

func (s *AccessStatistics) AddStatistics(other *AccessStatistics) {
	s.LoadCount += other.LoadCount
	s.StoreCount += other.StoreCount
	s.LoadBytes += other.LoadBytes
	s.StoreBytes += other.StoreBytes
}

// DetailedAccessStatistics extends AccessStatistics with the span of addresses touched
type DetailedAccessStatistics struct {
	AccessStatistics
	LowestAddress  uintptr
	HighestAddress uintptr
}

func (s *DetailedAccessStatistics) Clear() {
	s.AccessStatistics.Clear()
	s.LowestAddress = math.MaxUint
	s.HighestAddress = 0
}

func (s *DetailedAccessStatistics) addRange(address uintptr, size int) {
	if address < s.LowestAddress {
		s.LowestAddress = address
	}

	last := address + uintptr(size) - 1
	if last > s.HighestAddress {
		s.HighestAddress = last
	}
}

func (s *DetailedAccessStatistics) AddLoad(address uintptr, size int) {
	s.AccessStatistics.AddLoad(size)
	s.addRange(address, size)
}

func (s *DetailedAccessStatistics) AddStore(address uintptr, size int) {
	s.AccessStatistics.AddStore(size)
	s.addRange(address, size)
}

func (s *DetailedAccessStatistics) AddDetailedStatistics(other *DetailedAccessStatistics) {
	s.AccessStatistics.AddStatistics(&other.AccessStatistics)

	if other.LowestAddress < s.LowestAddress {
		s.LowestAddress = other.LowestAddress
	}

	if other.HighestAddress > s.HighestAddress {
		s.HighestAddress = other.HighestAddress
	}
}

// JsonData populates a json object with these statistics
func (s *DetailedAccessStatistics) JsonData(json *jwriter.ObjectState) {
	json.Name("Loads").Int(s.LoadCount)
	json.Name("LoadBytes").Int(s.LoadBytes)
	json.Name("Stores").Int(s.StoreCount)
	json.Name("StoreBytes").Int(s.StoreBytes)
	if s.LoadCount+s.StoreCount > 0 {
		json.Name("LowestAddress").String(fmt.Sprintf("%#x", s.LowestAddress))
		json.Name("HighestAddress").String(fmt.Sprintf("%#x", s.HighestAddress))
	}
}
