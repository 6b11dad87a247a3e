package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/volmem/memory/internal/utils"
	"github.com/vkngwrapper/volmem/memutils"
	"golang.org/x/exp/slog"
)

// TraceFlags indicate specific TracedBus behaviors to activate or deactivate
type TraceFlags int32

const (
	// TraceExternallySynchronized ensures that the TracedBus will not synchronize its statistics
	// internally. The consumer must guarantee that the bus is used from only one goroutine at a time.
	TraceExternallySynchronized TraceFlags = 1 << iota
	// TraceOmitValues leaves loaded and stored values out of log records, for registers whose
	// contents are sensitive.
	TraceOmitValues
)

var traceFlagNames = []struct {
	flag TraceFlags
	name string
}{
	{TraceExternallySynchronized, "TraceExternallySynchronized"},
	{TraceOmitValues, "TraceOmitValues"},
}

func (f TraceFlags) String() string {
	var names []string
	for _, entry := range traceFlagNames {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// TraceOptions contains optional settings when creating a TracedBus
type TraceOptions struct {
	// Flags indicates specific TracedBus behaviors to activate or deactivate
	Flags TraceFlags
	// Level is the slog level access records are logged at. The zero value is slog.LevelInfo,
	// so most consumers will want slog.LevelDebug here.
	Level slog.Level
}

// TracedBus wraps another Bus, logging every access and accumulating statistics about them.
// The wrapped bus still performs exactly one access per call.
type TracedBus struct {
	logger  *slog.Logger
	inner   Bus
	options TraceOptions

	mutex utils.OptionalMutex
	stats memutils.DetailedAccessStatistics
}

var _ Bus = &TracedBus{}

// NewTracedBus creates a TracedBus around inner that writes records to logger
func NewTracedBus(logger *slog.Logger, inner Bus, options TraceOptions) *TracedBus {
	b := &TracedBus{
		logger:  logger,
		inner:   inner,
		options: options,
		mutex: utils.OptionalMutex{
			UseMutex: options.Flags&TraceExternallySynchronized == 0,
		},
	}
	b.stats.Clear()

	logger.Debug("TracedBus::New", slog.String("Flags", options.Flags.String()))
	return b
}

// Inner returns the bus that performs the accesses
func (b *TracedBus) Inner() Bus { return b.inner }

func (b *TracedBus) record(kind string, address uintptr, size int, value uint64) {
	b.mutex.Lock()
	if kind == "Load" {
		b.stats.AddLoad(address, size)
	} else {
		b.stats.AddStore(address, size)
	}
	b.mutex.Unlock()

	if !b.logger.Enabled(context.Background(), b.options.Level) {
		return
	}

	attrs := []slog.Attr{
		slog.String("Address", fmt.Sprintf("%#x", address)),
		slog.Int("Size", size),
	}
	if b.options.Flags&TraceOmitValues == 0 {
		attrs = append(attrs, slog.String("Value", fmt.Sprintf("%#0*x", size*2, value)))
	}
	b.logger.LogAttrs(context.Background(), b.options.Level, "TracedBus::"+kind, attrs...)
}

func (b *TracedBus) Load8(address uintptr) uint8 {
	value := b.inner.Load8(address)
	b.record("Load", address, 1, uint64(value))
	return value
}

func (b *TracedBus) Load16(address uintptr) uint16 {
	value := b.inner.Load16(address)
	b.record("Load", address, 2, uint64(value))
	return value
}

func (b *TracedBus) Load32(address uintptr) uint32 {
	value := b.inner.Load32(address)
	b.record("Load", address, 4, uint64(value))
	return value
}

func (b *TracedBus) Load64(address uintptr) uint64 {
	value := b.inner.Load64(address)
	b.record("Load", address, 8, value)
	return value
}

func (b *TracedBus) Store8(address uintptr, value uint8) {
	b.inner.Store8(address, value)
	b.record("Store", address, 1, uint64(value))
}

func (b *TracedBus) Store16(address uintptr, value uint16) {
	b.inner.Store16(address, value)
	b.record("Store", address, 2, uint64(value))
}

func (b *TracedBus) Store32(address uintptr, value uint32) {
	b.inner.Store32(address, value)
	b.record("Store", address, 4, uint64(value))
}

func (b *TracedBus) Store64(address uintptr, value uint64) {
	b.inner.Store64(address, value)
	b.record("Store", address, 8, value)
}

// Statistics returns a copy of the statistics gathered since creation or the last ResetStatistics
func (b *TracedBus) Statistics() memutils.DetailedAccessStatistics {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.stats
}

func (b *TracedBus) ResetStatistics() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.stats.Clear()
}

// BuildStatsString writes the current statistics as a json object
func (b *TracedBus) BuildStatsString(writer *jwriter.Writer) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	obj := writer.Object()
	defer obj.End()

	obj.Name("Flags").String(b.options.Flags.String())
	b.stats.JsonData(&obj)
}
