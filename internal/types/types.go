// internal/types/types.go
package types

import "fmt"

// Handle is a generation-checked reference into an entity pool.
// A handle to a removed entity never resolves, even after its slot is reused.
// The zero Handle refers to nothing.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether the handle was never assigned.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d#%d", h.Index, h.Gen)
}
