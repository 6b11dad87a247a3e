package utils

import (
	"sync"
)

// OptionalMutex is a sync.Mutex that can be switched off for buses that the consumer
// promises to use from a single goroutine at a time
type OptionalMutex struct {
	Mutex    sync.Mutex
	UseMutex bool
}

func (m *OptionalMutex) Lock() {
	if m.UseMutex {
		m.Mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
	}
}
