package nestutils

// Iterator is an interface that extends ValueIterator with a Key method.
type Iterator[K, V any] interface {
	ValueIterator[V]
	Key() K
}

// ValueIterator is an interface that extends Cursor with a Value method.
type ValueIterator[V any] interface {
	Cursor
	Value() (value V, err error)
}

// Cursor is the positional part of every iterator.
//
// Iterators are used as:
//
//	for it.Rewind(); it.Valid(); it.Next() {
//		...
//	}
type Cursor interface {
	Close()
	Next()
	Rewind()
	Valid() bool
}
