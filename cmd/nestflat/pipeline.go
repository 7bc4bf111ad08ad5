package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ehsanranjbar/nestutils"
	"github.com/ehsanranjbar/nestutils/iters"
	"go.uber.org/zap"
)

var (
	withPaths bool
	leafType  string
	skipCount int
	limit     int
)

// leaf is a scalar of the input together with its position.
type leaf struct {
	index int
	path  iters.Path
	value any
}

var leafKinds = map[string]func(any) bool{
	"number": isNumber,
	"string": func(v any) bool {
		_, ok := v.(string)
		return ok
	},
	"bool": func(v any) bool {
		_, ok := v.(bool)
		return ok
	},
	"null": func(v any) bool { return v == nil },
	"table": func(v any) bool {
		switch v.(type) {
		case map[string]any, map[any]any:
			return true
		}
		return false
	},
}

func init() {
	rootCmd.Flags().BoolVar(&withPaths, "paths", false, "Write every scalar as a record with its index and path")
	rootCmd.Flags().StringVar(&leafType, "type", "", "Keep only scalars of this type ("+strings.Join(leafTypes(), ", ")+")")
	rootCmd.Flags().IntVar(&skipCount, "skip", 0, "Drop the first n selected scalars")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "Write at most n scalars (0 = all)")
}

// selecting reports whether any flag asks for more than a plain flatten.
func selecting() bool {
	return withPaths || leafType != "" || skipCount > 0 || limit > 0
}

// selectLeaves flattens seq lazily and applies the selection flags. Scalars past the limit are
// never visited, so a depth violation behind them goes unreported.
func selectLeaves(seq nestutils.Sequence) (nestutils.Sequence, error) {
	var keep func(any) bool
	if leafType != "" {
		var ok bool
		if keep, ok = leafKinds[leafType]; !ok {
			return nil, fmt.Errorf("unknown scalar type %q, want one of %s", leafType, strings.Join(leafTypes(), ", "))
		}
	}

	counted := iters.Count(iters.Flatten(seq, nestutils.WithMaxDepth(maxDepth)))
	leaves := iters.Map(counted, func(p iters.Path, v any) (leaf, error) {
		return leaf{path: p, value: v}, nil
	})
	indexed := iters.Map(iters.Enumerate[int, leaf](leaves), func(i int, l leaf) (leaf, error) {
		l.index = i
		return l, nil
	})

	var it nestutils.Iterator[int, leaf] = indexed
	if keep != nil {
		it = iters.Filter(it, func(_ int, l leaf) bool {
			return keep(l.value)
		})
	}
	if skipCount > 0 {
		it = iters.SkipN(it, skipCount)
	}
	if limit > 0 {
		it = iters.Limit(it, limit)
	}
	defer it.Close()

	selected, err := iters.Collect[leaf](it)
	if err != nil {
		return nil, err
	}
	logger.Debug("selected scalars",
		zap.Uint("visited", counted.Result()),
		zap.Int("selected", len(selected)),
	)

	out := make(nestutils.Sequence, len(selected))
	for i, l := range selected {
		if withPaths {
			out[i] = map[string]any{
				"index": l.index,
				"path":  []int(l.path),
				"value": l.value,
			}
			continue
		}
		out[i] = l.value
	}
	return out, nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func leafTypes() []string {
	names := make([]string, 0, len(leafKinds))
	for name := range leafKinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
