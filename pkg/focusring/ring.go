// Package focusring tracks which widget, among a fixed ordered set,
// currently receives keyboard input.
package focusring

// Ring is a circular selector over an ordered, fixed sequence of widget
// identifiers. The zero value is the empty ring. Navigation methods
// return a new value; a Ring is never mutated in place.
type Ring[ID comparable] struct {
	ids    []ID
	cursor int
}

// New builds a ring over the given identifiers with the cursor on the
// first one. The identifiers are copied, so the ring's order is fixed
// at construction. An empty argument list yields the empty ring.
func New[ID comparable](ids ...ID) Ring[ID] {
	if len(ids) == 0 {
		return Ring[ID]{}
	}
	owned := make([]ID, len(ids))
	copy(owned, ids)
	return Ring[ID]{ids: owned}
}

// Next returns a ring with the cursor advanced by one position,
// wrapping back to the first identifier after the last. On the empty
// ring it returns the ring unchanged.
func (r Ring[ID]) Next() Ring[ID] {
	if len(r.ids) == 0 {
		return r
	}
	r.cursor = (r.cursor + 1) % len(r.ids)
	return r
}

// Prev returns a ring with the cursor moved back by one position,
// wrapping to the last identifier from the first. On the empty ring it
// returns the ring unchanged.
func (r Ring[ID]) Prev() Ring[ID] {
	if len(r.ids) == 0 {
		return r
	}
	r.cursor = (r.cursor + len(r.ids) - 1) % len(r.ids)
	return r
}

// Current returns the identifier under the cursor. ok is false for the
// empty ring.
func (r Ring[ID]) Current() (id ID, ok bool) {
	if len(r.ids) == 0 {
		return id, false
	}
	return r.ids[r.cursor], true
}

// IsFocused reports whether id is the identifier under the cursor.
// Hosts use it to pick, among the cursor positions reported by their
// visible widgets, the one whose owner holds focus.
func (r Ring[ID]) IsFocused(id ID) bool {
	current, ok := r.Current()
	return ok && current == id
}

// Len returns the number of identifiers in the ring.
func (r Ring[ID]) Len() int {
	return len(r.ids)
}

// WithFocus renders item through render, passing whether the widget
// identified by id currently holds focus. It is a free function because
// Go methods cannot introduce extra type parameters.
func WithFocus[ID comparable, T, R any](r Ring[ID], id ID, render func(focused bool, item T) R, item T) R {
	return render(r.IsFocused(id), item)
}
