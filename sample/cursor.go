package sample

// Cursor remembers the bin of its last query and passes it as the hint of the
// next one, so scanning a set with slowly moving parameters stays cheap.
//
// A Cursor shares the set it was created from; mutations of the set are
// visible through it. A stale hint after a mutation is harmless.
type Cursor[P, V any] struct {
	set  *Set[P, V]
	hint int
}

// Cursor returns a new cursor over s with no remembered bin.
func (s *Set[P, V]) Cursor() *Cursor[P, V] {
	s.mustInit("Cursor")

	return &Cursor[P, V]{set: s, hint: NoHint}
}

// Set returns the set the cursor reads from.
func (c *Cursor[P, V]) Set() *Set[P, V] {
	return c.set
}

// Hint returns the bin of the last query, or NoHint.
func (c *Cursor[P, V]) Hint() int {
	return c.hint
}

// Reset forgets the remembered bin.
func (c *Cursor[P, V]) Reset() {
	c.hint = NoHint
}

// Lookup is Set.Lookup with the remembered bin as hint.
func (c *Cursor[P, V]) Lookup(x P) Result[P, V] {
	r := c.set.Lookup(x, c.hint)
	c.hint = r.Bin

	return r
}

// Lookup01 is Set.Lookup01 with the remembered bin as hint.
func (c *Cursor[P, V]) Lookup01(t float64) Result[P, V] {
	r := c.set.Lookup01(t, c.hint)
	c.hint = r.Bin

	return r
}

// ToBinClamped is Set.ToBinClamped with the remembered bin as hint.
func (c *Cursor[P, V]) ToBinClamped(x P) (int, float64, OutOfBounds) {
	bin, frac, oob := c.set.ToBinClamped(x, c.hint)
	c.hint = bin

	return bin, frac, oob
}

// Add is Set.Add with the remembered bin as hint. The bin ending at the
// written sample becomes the new hint.
func (c *Cursor[P, V]) Add(x P, y V) (int, bool) {
	idx, inserted := c.set.Add(x, y, c.hint)
	c.hint = max(idx-1, 0)

	return idx, inserted
}
