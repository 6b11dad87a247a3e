package vol

import "golang.org/x/exp/constraints"

// No marks a capability the descriptor does not have
type No struct{}

// Safe marks a capability that needs no further trust once the descriptor exists
type Safe struct{}

// Unsafe marks a capability that exists, but whose use relies on conditions the descriptor cannot
// promise, e.g. a register that may only be written while a peripheral is disabled. Unsafe
// capabilities are exercised through the ...Unsafe functions.
type Unsafe struct{}

// Permission is the constraint on the read and write capability parameters of every descriptor
type Permission interface {
	No | Safe | Unsafe
}

// Permitted is satisfied by the capabilities under which an access exists at all
type Permitted interface {
	Safe | Unsafe
}

// Word is the constraint on element types. Every access moves exactly unsafe.Sizeof(T) bytes,
// which for an integer type is 1, 2, 4 or 8.
type Word interface {
	constraints.Integer
}
