// internal/entity/ecs.go
package entity

import (
	"go-viking-defense/internal/component"
	"go-viking-defense/internal/types"
)

type slot[T any] struct {
	gen   uint32
	alive bool
	value *T
}

// Pool stores entities of one kind behind generation-checked handles and
// remembers the order they were created in.
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
	order []types.Handle
	dirty bool
	count int
}

// Add stores v and returns its handle.
func (p *Pool[T]) Add(v *T) types.Handle {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot[T]{})
	}
	s := &p.slots[idx]
	s.gen++
	s.alive = true
	s.value = v
	h := types.Handle{Index: idx, Gen: s.gen}
	p.order = append(p.order, h)
	p.count++
	return h
}

// Get resolves a handle. Stale and zero handles return false.
func (p *Pool[T]) Get(h types.Handle) (*T, bool) {
	if h.IsZero() || int(h.Index) >= len(p.slots) {
		return nil, false
	}
	s := &p.slots[h.Index]
	if !s.alive || s.gen != h.Gen {
		return nil, false
	}
	return s.value, true
}

// Alive reports whether the handle still resolves.
func (p *Pool[T]) Alive(h types.Handle) bool {
	_, ok := p.Get(h)
	return ok
}

// Remove drops the entity. Removing a stale handle is a no-op.
func (p *Pool[T]) Remove(h types.Handle) {
	if !p.Alive(h) {
		return
	}
	s := &p.slots[h.Index]
	s.alive = false
	s.value = nil
	p.free = append(p.free, h.Index)
	p.dirty = true
	p.count--
}

// Handles returns a snapshot of live handles in creation order. Callers may
// add or remove entities while iterating it.
func (p *Pool[T]) Handles() []types.Handle {
	if p.dirty {
		live := p.order[:0]
		for _, h := range p.order {
			if p.Alive(h) {
				live = append(live, h)
			}
		}
		p.order = live
		p.dirty = false
	}
	return append([]types.Handle(nil), p.order...)
}

func (p *Pool[T]) Len() int {
	return p.count
}

// ECS holds every simulated entity of a play session.
type ECS struct {
	GameTime    float64
	Enemies     Pool[component.Enemy]
	Towers      Pool[component.Tower]
	Projectiles Pool[component.Projectile]
}

func NewECS() *ECS {
	return &ECS{}
}
