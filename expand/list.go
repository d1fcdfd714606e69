package expand

import "strings"

// List renders its items with Text, separated by Sep.
type List[T any] struct {
	Items []T
	Sep   string
}

func (l List[T]) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = Text(item)
	}
	return strings.Join(parts, l.Sep)
}

// Len returns the number of items.
func (l List[T]) Len() int { return len(l.Items) }

// CommaList builds a List separated by commas.
func CommaList[T any](items ...T) List[T] {
	return List[T]{Items: items, Sep: ","}
}

// SpaceList builds a List separated by spaces.
func SpaceList[T any](items ...T) List[T] {
	return List[T]{Items: items, Sep: " "}
}

// Some returns a pointer to v, for optional fields.
func Some[T any](v T) *T {
	return &v
}

// Symbol is a bare identifier rendered by name. It stands in for constants
// that are only known by name, such as enum members in example arguments.
type Symbol string

func (s Symbol) String() string { return string(s) }
