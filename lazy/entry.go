package lazy

// EntryState tags whether a cached value still mirrors the store.
type EntryState uint8

const (
	// Preserved marks an entry that is unchanged since it was loaded.
	// Write-back skips Preserved entries.
	Preserved EntryState = iota
	// Mutated marks an entry whose value may differ from the store and must
	// be written back.
	Mutated
)

func (s EntryState) String() string {
	switch s {
	case Preserved:
		return "preserved"
	case Mutated:
		return "mutated"
	default:
		return "invalid"
	}
}

// Entry is one cached slot: an optional value (nil means logically absent
// or deleted) plus its dirty state. All operations are infallible and
// purely in-memory.
//
// Marking is the sole mechanism by which write-back learns what changed, so
// every operation that replaces, removes, or exposes a mutable path to the
// value marks the entry Mutated.
type Entry[T any] struct {
	value *T
	state EntryState
}

// NewEntry wraps value with the given state. A nil value is a logically
// absent slot.
func NewEntry[T any](value *T, state EntryState) *Entry[T] {
	return &Entry[T]{value: value, state: state}
}

// Value returns the contained value, nil if absent. The result must be
// treated as read-only; use ValueMut for a mutable path.
func (e *Entry[T]) Value() *T {
	return e.value
}

// ValueMut returns the contained value and marks the entry Mutated, since
// the caller may write through the result.
func (e *Entry[T]) ValueMut() *T {
	e.state = Mutated
	return e.value
}

// Put replaces the value, marks the entry Mutated, and returns the previous
// value if any.
func (e *Entry[T]) Put(value *T) *T {
	prev := e.value
	e.value = value
	e.state = Mutated
	return prev
}

// Take removes and returns the value, marking the entry Mutated.
func (e *Entry[T]) Take() *T {
	prev := e.value
	e.value = nil
	e.state = Mutated
	return prev
}

// State returns the current dirty state.
func (e *Entry[T]) State() EntryState {
	return e.state
}

// SetState overrides the dirty state.
func (e *Entry[T]) SetState(state EntryState) {
	e.state = state
}
