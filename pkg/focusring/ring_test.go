package focusring

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNew(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := New[string]()
		assert.Equal(t, 0, r.Len())
		_, ok := r.Current()
		assert.False(t, ok)
	})

	t.Run("cursor_starts_at_first", func(t *testing.T) {
		r := New("files", "preview", "tree")
		id, ok := r.Current()
		assert.True(t, ok)
		assert.Equal(t, "files", id)
		assert.Equal(t, 3, r.Len())
	})

	t.Run("copies_input", func(t *testing.T) {
		ids := []string{"a", "b"}
		r := New(ids...)
		ids[0] = "mutated"
		id, _ := r.Current()
		assert.Equal(t, "a", id)
	})
}

func TestNextPrev(t *testing.T) {
	t.Run("wraps_forward", func(t *testing.T) {
		r := New(1, 2, 3)
		r = r.Next()
		id, _ := r.Current()
		assert.Equal(t, 2, id)
		r = r.Next().Next()
		id, _ = r.Current()
		assert.Equal(t, 1, id)
	})

	t.Run("wraps_backward", func(t *testing.T) {
		r := New(1, 2, 3)
		r = r.Prev()
		id, _ := r.Current()
		assert.Equal(t, 3, id)
	})

	t.Run("single_item", func(t *testing.T) {
		r := New("only")
		for _, moved := range []Ring[string]{r.Next(), r.Prev()} {
			id, ok := moved.Current()
			assert.True(t, ok)
			assert.Equal(t, "only", id)
		}
	})

	t.Run("empty_is_noop", func(t *testing.T) {
		r := New[int]()
		_, ok := r.Next().Current()
		assert.False(t, ok)
		_, ok = r.Prev().Current()
		assert.False(t, ok)
	})

	t.Run("cyclic_closure", func(t *testing.T) {
		r := New("a", "b", "c", "d")
		forward, backward := r, r
		for i := 0; i < r.Len(); i++ {
			forward = forward.Next()
			backward = backward.Prev()
		}
		assert.Equal(t, r, forward)
		assert.Equal(t, r, backward)
	})

	t.Run("inverse_operations", func(t *testing.T) {
		r := New("a", "b", "c").Next()
		assert.Equal(t, r, r.Next().Prev())
		assert.Equal(t, r, r.Prev().Next())
	})

	t.Run("original_unchanged", func(t *testing.T) {
		r := New("a", "b")
		_ = r.Next()
		id, _ := r.Current()
		assert.Equal(t, "a", id)
	})
}

func TestIsFocused(t *testing.T) {
	r := New("files", "preview")
	assert.True(t, r.IsFocused("files"))
	assert.False(t, r.IsFocused("preview"))
	assert.False(t, r.IsFocused("missing"))

	r = r.Next()
	assert.True(t, r.IsFocused("preview"))
	assert.False(t, r.IsFocused("files"))

	assert.False(t, New[string]().IsFocused(""))
}

func TestWithFocus(t *testing.T) {
	r := New("files", "preview")

	render := func(focused bool, title string) string {
		if focused {
			return "[" + title + "]"
		}
		return title
	}

	assert.Equal(t, "[Files]", WithFocus(r, "files", render, "Files"))
	assert.Equal(t, "Preview", WithFocus(r, "preview", render, "Preview"))

	r = r.Next()
	assert.Equal(t, "Files", WithFocus(r, "files", render, "Files"))
	assert.Equal(t, "[Preview]", WithFocus(r, "preview", render, "Preview"))
}
