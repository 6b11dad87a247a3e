package vol

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/volmem/memutils"
)

// Describer is implemented by every descriptor in this package
type Describer interface {
	// Span returns the first byte the descriptor covers and the number of bytes it covers
	Span() (uintptr, uintptr)
	// DescribeJSON populates a json object with the descriptor's address, element type,
	// capabilities and shape
	DescribeJSON(json *jwriter.ObjectState)
}

var (
	_ Describer = Address[uint8, Safe, Safe]{}
	_ Describer = Block[uint8, Safe, Safe]{}
	_ Describer = Region[uint8, Safe, Safe]{}
	_ Describer = Grid2D[uint8, Safe, Safe]{}
	_ Describer = StridedGrid2D[uint8, Safe, Safe]{}
	_ Describer = Grid3D[uint8, Safe, Safe]{}

	_ memutils.Validatable = &Map{}
)

type mapEntry struct {
	name       string
	descriptor Describer
}

// Map is a named list of descriptors, usually one per register or memory area of a device. It
// exists for diagnostics: dumping a device's layout and sanity-checking it.
type Map struct {
	name    string
	entries []mapEntry
}

// NewMap creates an empty Map
func NewMap(name string) *Map {
	return &Map{name: name}
}

// Add appends a named descriptor and returns the Map, so declarations can be chained
func (m *Map) Add(name string, descriptor Describer) *Map {
	m.entries = append(m.entries, mapEntry{name: name, descriptor: descriptor})
	return m
}

// Len returns the number of entries
func (m *Map) Len() int { return len(m.entries) }

// Validate reports entries that share a name and entries whose spans overlap. Overlap is sometimes
// intended (an alias of the same register with different capabilities) so the result is a
// diagnostic, not a statement that the Map is unusable.
func (m *Map) Validate() error {
	var problems []string

	names := make(map[string]struct{}, len(m.entries))
	for _, entry := range m.entries {
		if _, exists := names[entry.name]; exists {
			problems = append(problems, fmt.Sprintf("duplicate entry %q", entry.name))
		}
		names[entry.name] = struct{}{}
	}

	sorted := make([]mapEntry, len(m.entries))
	copy(sorted, m.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		left, _ := sorted[i].descriptor.Span()
		right, _ := sorted[j].descriptor.Span()
		return left < right
	})

	var furthest mapEntry
	var furthestEnd uintptr
	for _, entry := range sorted {
		start, size := entry.descriptor.Span()
		if size == 0 {
			continue
		}
		if furthest.descriptor != nil && start < furthestEnd {
			furthestStart, _ := furthest.descriptor.Span()
			problems = append(problems, fmt.Sprintf("%q [%#x, %#x) overlaps %q [%#x, %#x)",
				entry.name, start, start+size, furthest.name, furthestStart, furthestEnd))
		}
		if start+size > furthestEnd {
			furthest = entry
			furthestEnd = start + size
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Newf("%s: %s", m.name, strings.Join(problems, "; "))
}

// PrintDetailedMap writes the Map as a json object
func (m *Map) PrintDetailedMap(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("Name").String(m.name)
	entries := obj.Name("Entries").Array()
	defer entries.End()

	for _, entry := range m.entries {
		entryObj := entries.Object()
		entryObj.Name("Name").String(entry.name)
		entry.descriptor.DescribeJSON(&entryObj)

		_, size := entry.descriptor.Span()
		entryObj.Name("Bytes").String(fmt.Sprintf("%#x", size))
		entryObj.End()
	}
}

// JSON returns the Map as json, as written by PrintDetailedMap
func (m *Map) JSON() []byte {
	writer := jwriter.NewWriter()
	m.PrintDetailedMap(&writer)
	return writer.Bytes()
}
