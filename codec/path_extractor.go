package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// PathExtractor is an interface for extracting a value with the given path from a given value.
type PathExtractor[T, U any] interface {
	ExtractPath(t T, path string) (U, error)
}

// ConvertPathExtractor is a PathExtractor that converts the extracted value from base extractor to the target type using the given converter.
type ConvertPathExtractor[T, U, V any] struct {
	base PathExtractor[T, U]
	c    func(U) (V, error)
}

// NewConvertPathExtractor creates a new ConvertPathExtractor with the given base extractor and converter.
func NewConvertPathExtractor[T, U, V any](base PathExtractor[T, U], c func(U) (V, error)) ConvertPathExtractor[T, U, V] {
	return ConvertPathExtractor[T, U, V]{base: base, c: c}
}

// ExtractPath implements the PathExtractor interface.
func (pe ConvertPathExtractor[T, U, V]) ExtractPath(t T, path string) (v V, err error) {
	u, err := pe.base.ExtractPath(t, path)
	if err != nil {
		return v, err
	}

	return pe.c(u)
}

// DocumentPathExtractor walks decoded documents along dot separated paths such as "data.items.0".
// Segments select table entries, or list elements when the segment is an index.
type DocumentPathExtractor struct{}

// ExtractPath implements the PathExtractor interface.
func (DocumentPathExtractor) ExtractPath(doc any, path string) (any, error) {
	v := doc
	for _, seg := range strings.Split(path, ".") {
		var ok bool
		switch n := v.(type) {
		case map[string]any:
			v, ok = n[seg]
		case map[any]any:
			v, ok = n[seg]
		case []any:
			var i int
			i, ok = index(seg, len(n))
			if ok {
				v = n[i]
			}
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q at segment %q", ErrKeyNotFound, path, seg)
		}
	}
	return v, nil
}

func index(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// nest places v under the dot separated path inside new tables.
func nest(path string, v any) map[string]any {
	segs := strings.Split(path, ".")
	for i := len(segs) - 1; i > 0; i-- {
		v = map[string]any{segs[i]: v}
	}
	return map[string]any{segs[0]: v}
}
