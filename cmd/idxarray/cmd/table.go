package cmd

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/idxarray"
	"github.com/hupe1980/idxarray/snapshot"
	"github.com/hupe1980/idxarray/tablestore"
)

var elementTypes = []string{"any", "int64", "uint8", "uint16", "uint32", "uint64", "float64", "string"}

var errIncompatible = errors.New("tables have different width or element type")

// table is a loaded array with its element type erased.
type table interface {
	Width() int
	Len() int
	Value(i int) any
	Diff(other table) (*roaring.Bitmap, error)
}

type typedTable[K idxarray.Index, T any] struct {
	a *idxarray.Array[K, T]
}

func (t typedTable[K, T]) Width() int { return t.a.Width() }

func (t typedTable[K, T]) Len() int { return t.a.Len() }

func (t typedTable[K, T]) Value(i int) any { return t.a.Get(K(i)) }

func (t typedTable[K, T]) Diff(other table) (*roaring.Bitmap, error) {
	o, ok := other.(typedTable[K, T])
	if !ok {
		return nil, errIncompatible
	}
	return t.a.DiffFunc(o.a, func(x, y T) bool { return reflect.DeepEqual(x, y) }), nil
}

// loadTable reads the header of name to pick the index width, then decodes
// the table with elements of type typ.
func loadTable(ctx context.Context, s *tablestore.Store, name, typ string) (table, *snapshot.Info, error) {
	info, err := s.Stat(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	var t table
	switch info.Width {
	case 8:
		t, err = loadTyped[uint8](ctx, s, name, typ)
	case 16:
		t, err = loadTyped[uint16](ctx, s, name, typ)
	default:
		err = fmt.Errorf("%w: %d", snapshot.ErrInvalidWidth, info.Width)
	}
	if err != nil {
		return nil, nil, err
	}
	return t, info, nil
}

func loadTyped[K idxarray.Index](ctx context.Context, s *tablestore.Store, name, typ string) (table, error) {
	switch typ {
	case "any":
		return load[K, any](ctx, s, name)
	case "int64":
		return load[K, int64](ctx, s, name)
	case "uint8":
		return load[K, uint8](ctx, s, name)
	case "uint16":
		return load[K, uint16](ctx, s, name)
	case "uint32":
		return load[K, uint32](ctx, s, name)
	case "uint64":
		return load[K, uint64](ctx, s, name)
	case "float64":
		return load[K, float64](ctx, s, name)
	case "string":
		return load[K, string](ctx, s, name)
	default:
		return nil, fmt.Errorf("unknown element type %q, want one of %v", typ, elementTypes)
	}
}

func load[K idxarray.Index, T any](ctx context.Context, s *tablestore.Store, name string) (table, error) {
	a, err := tablestore.Get[K, T](ctx, s, name)
	if err != nil {
		return nil, err
	}
	return typedTable[K, T]{a: a}, nil
}

// parseIndex parses a decimal, hex (0x) or octal (0o) index for a table of
// the given width.
func parseIndex(s string, width int) (int, error) {
	n, err := strconv.ParseUint(s, 0, width)
	if err != nil {
		return 0, fmt.Errorf("index %q: not a %d-bit index: %w", s, width, err)
	}
	return int(n), nil
}

func isZero(v any) bool {
	return v == nil || reflect.ValueOf(v).IsZero()
}

// indexRange is a closed run of consecutive indices.
type indexRange struct {
	lo, hi uint32
}

func (r indexRange) String() string {
	if r.lo == r.hi {
		return strconv.FormatUint(uint64(r.lo), 10)
	}
	return fmt.Sprintf("%d-%d", r.lo, r.hi)
}

// ranges collapses bm into runs of consecutive indices.
func ranges(bm *roaring.Bitmap) []indexRange {
	var out []indexRange
	it := bm.Iterator()
	for it.HasNext() {
		i := it.Next()
		if n := len(out); n > 0 && out[n-1].hi+1 == i {
			out[n-1].hi = i
			continue
		}
		out = append(out, indexRange{lo: i, hi: i})
	}
	return out
}
