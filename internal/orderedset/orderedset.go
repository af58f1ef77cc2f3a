// Package orderedset provides an insertion-ordered set with index access.
package orderedset

// Set holds unique elements in the order they were first added.
type Set[T comparable] struct {
	items []T
	index map[T]int
}

// New returns a set containing items, duplicates dropped.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]int, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add appends v unless it is already present and reports whether it was added.
func (s *Set[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Union adds every element of o that s does not hold yet.
func (s *Set[T]) Union(o *Set[T]) {
	if o == nil {
		return
	}
	for _, v := range o.items {
		s.Add(v)
	}
}

func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

// Remove deletes v, keeping the order of the remaining elements.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	s.RemoveAt(i)
	return true
}

// RemoveAt deletes the element at position i.
func (s *Set[T]) RemoveAt(i int) {
	delete(s.index, s.items[i])
	s.items = append(s.items[:i], s.items[i+1:]...)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
}

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Set[T]) At(i int) T { return s.items[i] }

// Items returns the backing slice. Callers must not modify it.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	return s.items
}
