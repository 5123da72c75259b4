// Package structs implements helpers to generalize vectors of integers, as well as their serialization.
package structs

// Equatable is implemented by objects that can be compared by value.
type Equatable[T any] interface {
	Equal(*T) bool
}

// Cloner is implemented by objects that can return a deep copy of themselves.
type Cloner[V any] interface {
	Clone() *V
}

// BinarySizer is implemented by objects that know their serialized size in bytes.
type BinarySizer interface {
	BinarySize() int
}
