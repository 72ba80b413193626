package props

import (
	"iter"
	"slices"
	"strings"
)

// Pair is a single property.
type Pair struct {
	Key   Key
	Value string
}

// NewPair creates a pair from plain strings.
func NewPair(key, value string) Pair {
	return Pair{Key: NewKey(key), Value: value}
}

// Name returns the key text.
func (p Pair) Name() string {
	return p.Key.String()
}

// Set is an ordered collection of pairs with unique keys.
//
// A Set is safe for concurrent readers. Merge and Put need external
// synchronization.
type Set struct {
	pairs []Pair
	index map[Key]int
}

// NewSet builds a set from pairs. When a key occurs more than once the first
// occurrence is kept and later ones are ignored.
func NewSet(pairs ...Pair) *Set {
	s := &Set{
		pairs: make([]Pair, 0, len(pairs)),
		index: make(map[Key]int, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := s.index[p.Key]; ok {
			continue
		}
		s.index[p.Key] = len(s.pairs)
		s.pairs = append(s.pairs, p)
	}
	return s
}

// FromMap builds a set from a map. Keys are inserted in sorted order.
func FromMap(m map[string]string) *Set {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = NewPair(k, m[k])
	}
	return NewSet(pairs...)
}

// Find returns the value stored under key.
func (s *Set) Find(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	i, ok := s.index[NewKey(key)]
	if !ok {
		return "", false
	}
	return s.pairs[i].Value, true
}

// Fetch returns the value stored under key, or def when the key is absent.
// A present key with an empty value returns the empty value.
func (s *Set) Fetch(key, def string) string {
	if v, ok := s.Find(key); ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.Find(key)
	return ok
}

// Merge copies every pair of other into s. Existing keys are overwritten in
// place; unseen keys are appended in other's order.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, p := range other.pairs {
		s.put(p)
	}
}

// Put sets a single property, overwriting in place or appending.
func (s *Set) Put(key, value string) {
	s.put(NewPair(key, value))
}

func (s *Set) put(p Pair) {
	if s.index == nil {
		s.index = make(map[Key]int)
	}
	if i, ok := s.index[p.Key]; ok {
		s.pairs[i].Value = p.Value
		return
	}
	s.index[p.Key] = len(s.pairs)
	s.pairs = append(s.pairs, p)
}

// Len returns the number of properties.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pairs)
}

// Pairs returns a copy of the pairs in order.
func (s *Set) Pairs() []Pair {
	if s == nil {
		return nil
	}
	return slices.Clone(s.pairs)
}

// Keys returns the key names in order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, s.Len())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the properties in order.
func (s *Set) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s == nil {
			return
		}
		for _, p := range s.pairs {
			if !yield(p.Key.String(), p.Value) {
				return
			}
		}
	}
}

// ToMap returns the properties as a map.
func (s *Set) ToMap() map[string]string {
	m := make(map[string]string, s.Len())
	for k, v := range s.All() {
		m[k] = v
	}
	return m
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return NewSet(s.Pairs()...)
}

// String renders the set in property-text format.
func (s *Set) String() string {
	var sb strings.Builder
	for k, v := range s.All() {
		sb.WriteString(k + "=" + v + "\n")
	}
	return sb.String()
}

// Truthy reports whether value is one of "yes", "y" or "true", ignoring case.
func Truthy(value string) bool {
	for _, t := range []string{"yes", "y", "true"} {
		if strings.EqualFold(value, t) {
			return true
		}
	}
	return false
}

// Present reports whether value is non-empty after trimming whitespace.
func Present(value string) bool {
	return strings.TrimSpace(value) != ""
}
