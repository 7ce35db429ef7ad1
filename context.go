package filterexp

import (
	"github.com/vitalvas/filterexp/pack"
	"github.com/vitalvas/filterexp/value"
)

// Context step kinds. Bit 0x10 marks list steps, 0x20 map steps; the
// write-type resolution in cdtWriteType relies on that split.
const (
	ctxTypeListIndex int64 = 0x10
	ctxTypeListRank  int64 = 0x11
	ctxTypeListValue int64 = 0x13
	ctxTypeMapIndex  int64 = 0x20
	ctxTypeMapRank   int64 = 0x21
	ctxTypeMapKey    int64 = 0x22
	ctxTypeMapValue  int64 = 0x23
)

// Ctx is one step of a descent path into a nested collection. A path of
// steps addresses an inner list or map that a collection call operates on
// instead of the bin's top level.
type Ctx struct {
	ID    int64
	Value value.Value
}

// CtxListIndex selects the list element at index. Negative indexes count
// from the end.
func CtxListIndex(index int64) Ctx {
	return Ctx{ID: ctxTypeListIndex, Value: value.IntValue(index)}
}

// CtxListRank selects the list element with the given rank.
func CtxListRank(rank int64) Ctx {
	return Ctx{ID: ctxTypeListRank, Value: value.IntValue(rank)}
}

// CtxListValue selects the first list element equal to v.
func CtxListValue(v value.Value) Ctx {
	return Ctx{ID: ctxTypeListValue, Value: v}
}

// CtxMapIndex selects the map entry at index within the key ordering.
func CtxMapIndex(index int64) Ctx {
	return Ctx{ID: ctxTypeMapIndex, Value: value.IntValue(index)}
}

// CtxMapRank selects the map entry with the given value rank.
func CtxMapRank(rank int64) Ctx {
	return Ctx{ID: ctxTypeMapRank, Value: value.IntValue(rank)}
}

// CtxMapKey selects the map entry with key k.
func CtxMapKey(k value.Value) Ctx {
	return Ctx{ID: ctxTypeMapKey, Value: k}
}

// CtxMapValue selects the first map entry whose value equals v.
func CtxMapValue(v value.Value) Ctx {
	return Ctx{ID: ctxTypeMapValue, Value: v}
}

// packContext writes the descent block for a context path: a three element
// array of the 0xff marker, the flattened id and value pairs, and, as its
// structural third element, the argument array the caller writes next. An
// empty path writes nothing, leaving the argument array bare.
func packContext(s pack.Sink, path []Ctx) (int, error) {
	if len(path) == 0 {
		return 0, nil
	}

	size, err := pack.ArrayHeader(s, 3)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, 0xff)
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.ArrayHeader(s, len(path)*2)
	size += n
	if err != nil {
		return size, err
	}

	for _, c := range path {
		n, err := pack.Int(s, c.ID)
		size += n
		if err != nil {
			return size, err
		}

		if c.Value == nil {
			return size, ErrMissingValue
		}
		n, err = c.Value.Pack(s)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}
