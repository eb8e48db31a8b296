package stats

import (
	"slices"
)

// Number constrains the values a Table can hold.
type Number interface {
	~int | ~int64 | ~float64
}

// Entry is one key/value pair of a Table.
type Entry[V Number] struct {
	Value     int `codec:"value"     json:"value"     msgpack:"value"`
	Frequency V   `codec:"frequency" json:"frequency" msgpack:"frequency"`
}

// Table is an immutable mapping from a sample value to a number that
// remembers the order in which keys were added.
// Tables are only built by this package.
type Table[V Number] struct {
	keys   []int
	values map[int]V
}

// FrequencyTable maps each value to an integer count.
type FrequencyTable = Table[int]

// RelativeTable maps each value to a share of the total.
type RelativeTable = Table[float64]

func newTable[V Number](capacity int) *Table[V] {
	return &Table[V]{
		keys:   make([]int, 0, capacity),
		values: make(map[int]V, capacity),
	}
}

// add inserts key with v or adds v to its current value.
func (t *Table[V]) add(key int, v V) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.values[key] += v
}

// Len returns the number of keys.
func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Get returns the value stored for key.
func (t *Table[V]) Get(key int) (V, bool) {
	if t == nil {
		var zero V

		return zero, false
	}

	v, ok := t.values[key]

	return v, ok
}

// Keys returns the keys in insertion order.
func (t *Table[V]) Keys() []int {
	if t == nil {
		return nil
	}

	return slices.Clone(t.keys)
}

// SortedKeys returns the keys in ascending order.
func (t *Table[V]) SortedKeys() []int {
	keys := t.Keys()
	slices.Sort(keys)

	return keys
}

// Entries returns the pairs in insertion order.
func (t *Table[V]) Entries() []Entry[V] {
	return t.entries(t.Keys())
}

// SortedEntries returns the pairs in ascending key order.
func (t *Table[V]) SortedEntries() []Entry[V] {
	return t.entries(t.SortedKeys())
}

// Sum returns the sum of all values.
func (t *Table[V]) Sum() V {
	var total V

	if t == nil {
		return total
	}

	for _, key := range t.keys {
		total += t.values[key]
	}

	return total
}

func (t *Table[V]) entries(keys []int) []Entry[V] {
	out := make([]Entry[V], 0, len(keys))
	for _, key := range keys {
		out = append(out, Entry[V]{Value: key, Frequency: t.values[key]})
	}

	return out
}
