package filterexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vitalvas/filterexp/value"
)

func TestCallContextBlockPrecedesArguments(t *testing.T) {
	// One real argument plus a single step descent. The descent block
	// lands before the argument array header and stays out of its count.
	e := &callExpr{
		returns: TypeInt,
		flags:   cdtModule,
		args: []callArg{
			exprArg{e: IntVal(2)},
			ctxArg{path: []Ctx{CtxListIndex(3)}},
		},
		bin: ListBin("a"),
	}

	expected := []byte{
		0x95, 0x7f, 0x02, 0x00,
		0x93, 0xcc, 0xff, 0x92, 0x10, 0x03,
		0x91, 0x02,
		0x93, 0x51, 0x04, 0xa1, 'a',
	}
	assert.Equal(t, expected, encoded(t, e))
}

func TestCallContextShape(t *testing.T) {
	e := &callExpr{
		returns: TypeInt,
		flags:   cdtModule,
		args: []callArg{
			exprArg{e: IntVal(2)},
			ctxArg{path: []Ctx{CtxListIndex(3)}},
		},
		bin: ListBin("a"),
	}

	top := decoded(t, e)
	require.Len(t, top, 5)
	assert.EqualValues(t, opCall, top[0])
	assert.EqualValues(t, TypeInt, top[1])
	assert.EqualValues(t, cdtModule, top[2])

	// The descent block reads as a wrapper around the argument array: the
	// marker, the flattened steps, then the arguments as its third element.
	wrapper, ok := top[3].([]any)
	require.True(t, ok, "descent block decoded as %#v", top[3])
	require.Len(t, wrapper, 3)
	assert.EqualValues(t, 0xff, wrapper[0])

	steps, ok := wrapper[1].([]any)
	require.True(t, ok)
	require.Len(t, steps, 2)
	assert.EqualValues(t, 0x10, steps[0])
	assert.EqualValues(t, 3, steps[1])

	args, ok := wrapper[2].([]any)
	require.True(t, ok)
	require.Len(t, args, 1, "descent steps must not count as arguments")
	assert.EqualValues(t, 2, args[0])
}

func TestCallEmptyContextOmitted(t *testing.T) {
	e := &callExpr{
		returns: TypeInt,
		flags:   cdtModule,
		args: []callArg{
			exprArg{e: IntVal(2)},
			ctxArg{path: nil},
		},
		bin: ListBin("a"),
	}

	expected := []byte{
		0x95, 0x7f, 0x02, 0x00,
		0x91, 0x02,
		0x93, 0x51, 0x04, 0xa1, 'a',
	}
	assert.Equal(t, expected, encoded(t, e))
}

func TestCallContextCountedInSize(t *testing.T) {
	bare := ListGetByIndex(ListReturnValues, TypeInt, IntVal(2), ListBin("a"))
	nested := ListGetByIndex(ListReturnValues, TypeInt, IntVal(2), ListBin("a"), CtxListIndex(0))

	bareSize, err := Size(bare)
	require.NoError(t, err)
	nestedSize, err := Size(nested)
	require.NoError(t, err)

	// The descent block for one integer step is six bytes.
	assert.Equal(t, bareSize+6, nestedSize)

	out, err := Encode(nested)
	require.NoError(t, err)
	assert.Len(t, out, nestedSize)
}

func TestCallMultipleContextBlocksKeepOrder(t *testing.T) {
	e := &callExpr{
		returns: TypeInt,
		flags:   cdtModule,
		args: []callArg{
			ctxArg{path: []Ctx{CtxListIndex(0)}},
			exprArg{e: IntVal(1)},
			ctxArg{path: []Ctx{CtxListRank(1)}},
		},
		bin: ListBin("a"),
	}

	expected := []byte{
		0x95, 0x7f, 0x02, 0x00,
		0x93, 0xcc, 0xff, 0x92, 0x10, 0x00,
		0x93, 0xcc, 0xff, 0x92, 0x11, 0x01,
		0x91, 0x01,
		0x93, 0x51, 0x04, 0xa1, 'a',
	}
	assert.Equal(t, expected, encoded(t, e))
}

func TestCallBareValue(t *testing.T) {
	// Without an argument list a single value stands in the argument slot.
	e := &callExpr{
		returns: TypeInt,
		flags:   cdtModule,
		val:     value.IntValue(5),
		bin:     ListBin("a"),
	}

	expected := []byte{
		0x95, 0x7f, 0x02, 0x00,
		0x05,
		0x93, 0x51, 0x04, 0xa1, 'a',
	}
	assert.Equal(t, expected, encoded(t, e))
}

func TestCallErrors(t *testing.T) {
	t.Run("no arguments and no value", func(t *testing.T) {
		e := &callExpr{returns: TypeInt, flags: cdtModule, bin: ListBin("a")}
		_, err := Encode(e)
		assert.ErrorIs(t, err, ErrMissingValue)
	})

	t.Run("missing bin", func(t *testing.T) {
		e := &callExpr{returns: TypeInt, flags: cdtModule, args: []callArg{intArg(1)}}
		_, err := Encode(e)
		assert.ErrorIs(t, err, ErrMissingBin)
	})

	t.Run("nil expression argument", func(t *testing.T) {
		e := &callExpr{
			returns: TypeInt,
			flags:   cdtModule,
			args:    []callArg{exprArg{}},
			bin:     ListBin("a"),
		}
		_, err := Encode(e)
		assert.ErrorIs(t, err, ErrNilExpression)
	})

	t.Run("nil value argument", func(t *testing.T) {
		e := &callExpr{
			returns: TypeInt,
			flags:   cdtModule,
			args:    []callArg{valueArg{}},
			bin:     ListBin("a"),
		}
		_, err := Encode(e)
		assert.ErrorIs(t, err, ErrMissingValue)
	})
}

func TestWriteTypeFollowsContext(t *testing.T) {
	assert.Equal(t, TypeList, cdtWriteType(nil, TypeList))
	assert.Equal(t, TypeMap, cdtWriteType(nil, TypeMap))
	assert.Equal(t, TypeList, cdtWriteType([]Ctx{CtxListIndex(0)}, TypeMap))
	assert.Equal(t, TypeMap, cdtWriteType([]Ctx{CtxMapKey(value.StringValue("k"))}, TypeList))
	assert.Equal(t, TypeList, cdtWriteType([]Ctx{CtxListRank(1), CtxMapRank(0)}, TypeMap))
}

func BenchmarkEncodeCall(b *testing.B) {
	e := ListGetByIndex(ListReturnValues, TypeInt, IntVal(2), ListBin("a"), CtxListIndex(0))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(e); err != nil {
			b.Fatal(err)
		}
	}
}

func FuzzEncodeCall(f *testing.F) {
	f.Add("a", int64(0), int64(2))
	f.Add("list", int64(-1), int64(100))

	f.Fuzz(func(t *testing.T, name string, step, index int64) {
		e := ListGetByIndex(ListReturnValues, TypeInt, IntVal(index), ListBin(name), CtxListIndex(step))

		size, err := Size(e)
		if err != nil {
			t.Fatalf("size: %v", err)
		}

		out, err := Encode(e)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if len(out) != size {
			t.Fatalf("probe said %d bytes, wrote %d", size, len(out))
		}

		var top []any
		if err := msgpack.Unmarshal(out, &top); err != nil {
			t.Fatalf("reference decode: %v", err)
		}
		if len(top) != 5 {
			t.Fatalf("decoded %d elements, want 5", len(top))
		}
	})
}
