package pack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// packed runs fn twice, once against Discard for the size and once against
// a Buffer of exactly that size, and checks the two counts agree.
func packed(t *testing.T, fn func(Sink) (int, error)) []byte {
	t.Helper()

	size, err := fn(Discard)
	require.NoError(t, err)

	buf := NewBuffer(size)
	n, err := fn(buf)
	require.NoError(t, err)
	require.Equal(t, size, n, "probe size and written size differ")
	require.Equal(t, size, buf.Len())

	return buf.Bytes()
}

func TestInt(t *testing.T) {
	tests := []struct {
		v        int64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0xcc, 0x80}},
		{255, []byte{0xcc, 0xff}},
		{256, []byte{0xcd, 0x01, 0x00}},
		{65535, []byte{0xcd, 0xff, 0xff}},
		{65536, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{4294967295, []byte{0xce, 0xff, 0xff, 0xff, 0xff}},
		{4294967296, []byte{0xd3, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{math.MaxInt64, []byte{0xd3, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{-1, []byte{0xff}},
		{-32, []byte{0xe0}},
		{-33, []byte{0xd0, 0xdf}},
		{-128, []byte{0xd0, 0x80}},
		{-129, []byte{0xd1, 0xff, 0x7f}},
		{-32768, []byte{0xd1, 0x80, 0x00}},
		{-32769, []byte{0xd2, 0xff, 0xff, 0x7f, 0xff}},
		{math.MinInt32, []byte{0xd2, 0x80, 0x00, 0x00, 0x00}},
		{math.MinInt32 - 1, []byte{0xd3, 0xff, 0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0xff}},
		{math.MinInt64, []byte{0xd3, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		got := packed(t, func(s Sink) (int, error) { return Int(s, tt.v) })
		assert.Equal(t, tt.expected, got, "Int(%d)", tt.v)

		var back int64
		require.NoError(t, msgpack.Unmarshal(got, &back), "Int(%d)", tt.v)
		assert.Equal(t, tt.v, back, "Int(%d) reference decode", tt.v)
	}
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		v        float64
		expected []byte
	}{
		{0, []byte{0xcb, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{1.5, []byte{0xcb, 0x3f, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{-2.5, []byte{0xcb, 0xc0, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		got := packed(t, func(s Sink) (int, error) { return Float64(s, tt.v) })
		assert.Equal(t, tt.expected, got, "Float64(%v)", tt.v)

		var back float64
		require.NoError(t, msgpack.Unmarshal(got, &back))
		assert.Equal(t, tt.v, back, "Float64(%v) reference decode", tt.v)
	}
}

func TestBoolNil(t *testing.T) {
	assert.Equal(t, []byte{0xc3}, packed(t, func(s Sink) (int, error) { return Bool(s, true) }))
	assert.Equal(t, []byte{0xc2}, packed(t, func(s Sink) (int, error) { return Bool(s, false) }))
	assert.Equal(t, []byte{0xc0}, packed(t, func(s Sink) (int, error) { return Nil(s) }))
}

func TestArrayHeader(t *testing.T) {
	tests := []struct {
		n        int
		expected []byte
	}{
		{0, []byte{0x90}},
		{15, []byte{0x9f}},
		{16, []byte{0xdc, 0x00, 0x10}},
		{65535, []byte{0xdc, 0xff, 0xff}},
		{65536, []byte{0xdd, 0x00, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		got := packed(t, func(s Sink) (int, error) { return ArrayHeader(s, tt.n) })
		assert.Equal(t, tt.expected, got, "ArrayHeader(%d)", tt.n)
	}
}

func TestMapHeader(t *testing.T) {
	tests := []struct {
		n        int
		expected []byte
	}{
		{0, []byte{0x80}},
		{15, []byte{0x8f}},
		{16, []byte{0xde, 0x00, 0x10}},
		{65536, []byte{0xdf, 0x00, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		got := packed(t, func(s Sink) (int, error) { return MapHeader(s, tt.n) })
		assert.Equal(t, tt.expected, got, "MapHeader(%d)", tt.n)
	}
}

func TestStringHeaderNeverStr8(t *testing.T) {
	tests := []struct {
		n        int
		expected []byte
	}{
		{0, []byte{0xa0}},
		{31, []byte{0xbf}},
		// 32..255 must use str16, not the newer str8 marker
		{32, []byte{0xda, 0x00, 0x20}},
		{255, []byte{0xda, 0x00, 0xff}},
		{65535, []byte{0xda, 0xff, 0xff}},
		{65536, []byte{0xdb, 0x00, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		got := packed(t, func(s Sink) (int, error) { return StringHeader(s, tt.n) })
		assert.Equal(t, tt.expected, got, "StringHeader(%d)", tt.n)
		assert.NotEqual(t, byte(0xd9), got[0], "StringHeader(%d) emitted str8", tt.n)
	}
}

func TestRawString(t *testing.T) {
	got := packed(t, func(s Sink) (int, error) { return RawString(s, "abc") })
	assert.Equal(t, []byte{0xa3, 'a', 'b', 'c'}, got)

	var back string
	require.NoError(t, msgpack.Unmarshal(got, &back))
	assert.Equal(t, "abc", back)

	long := string(make([]byte, 40))
	got = packed(t, func(s Sink) (int, error) { return RawString(s, long) })
	assert.Equal(t, []byte{0xda, 0x00, 0x28}, got[:3])
	assert.Len(t, got, 43)
}

func TestRawBytes(t *testing.T) {
	got := packed(t, func(s Sink) (int, error) { return RawBytes(s, []byte{0x01, 0x02}) })
	assert.Equal(t, []byte{0xa2, 0x01, 0x02}, got)

	got = packed(t, func(s Sink) (int, error) { return RawBytes(s, nil) })
	assert.Equal(t, []byte{0xa0}, got)
}

func TestByte(t *testing.T) {
	got := packed(t, func(s Sink) (int, error) { return Byte(s, 0x7f) })
	assert.Equal(t, []byte{0x7f}, got)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.WriteByte(0xff))

	n, err := Discard.Write([]byte{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = Discard.WriteString("hello")
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestBuffer(t *testing.T) {
	t.Run("fills exactly", func(t *testing.T) {
		buf := NewBuffer(4)
		require.NoError(t, buf.WriteByte(0x01))

		n, err := buf.Write([]byte{0x02, 0x03})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = buf.WriteString("x")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		assert.Equal(t, []byte{0x01, 0x02, 0x03, 'x'}, buf.Bytes())
		assert.Equal(t, 4, buf.Len())
		assert.Equal(t, 4, buf.Cap())
	})

	t.Run("overflow byte", func(t *testing.T) {
		buf := NewBuffer(0)
		assert.ErrorIs(t, buf.WriteByte(0x01), ErrBufferFull)
	})

	t.Run("overflow is all or nothing", func(t *testing.T) {
		buf := NewBuffer(4)
		_, err := buf.Write([]byte{1, 2, 3})
		require.NoError(t, err)

		_, err = buf.Write([]byte{4, 5})
		assert.ErrorIs(t, err, ErrBufferFull)
		assert.Equal(t, []byte{1, 2, 3}, buf.Bytes(), "failed write must not leave partial bytes")

		_, err = buf.WriteString("yz")
		assert.ErrorIs(t, err, ErrBufferFull)
		assert.Equal(t, 3, buf.Len())
	})

	t.Run("reset", func(t *testing.T) {
		buf := NewBuffer(2)
		require.NoError(t, buf.WriteByte(0xaa))
		buf.Reset()
		assert.Equal(t, 0, buf.Len())
		assert.Equal(t, 2, buf.Cap())
		assert.Empty(t, buf.Bytes())
	})
}

func TestIntAbortsMidWrite(t *testing.T) {
	// A three byte value into a two byte buffer fails on the last byte.
	buf := NewBuffer(2)
	_, err := Int(buf, 256)
	assert.ErrorIs(t, err, ErrBufferFull)
}

func BenchmarkInt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Int(Discard, 123456789)
	}
}

func BenchmarkIntBuffer(b *testing.B) {
	buf := NewBuffer(16)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_, _ = Int(buf, 123456789)
	}
}

func BenchmarkRawString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = RawString(Discard, "benchmark-bin-name")
	}
}

func FuzzInt(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(127))
	f.Add(int64(128))
	f.Add(int64(-32))
	f.Add(int64(-33))
	f.Add(int64(math.MaxInt64))
	f.Add(int64(math.MinInt64))

	f.Fuzz(func(t *testing.T, v int64) {
		size, err := Int(Discard, v)
		if err != nil {
			t.Fatalf("size probe failed: %v", err)
		}

		buf := NewBuffer(size)
		n, err := Int(buf, v)
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n != size {
			t.Fatalf("size %d != written %d", size, n)
		}

		var back int64
		if err := msgpack.Unmarshal(buf.Bytes(), &back); err != nil {
			t.Fatalf("reference decode failed: %v", err)
		}
		if back != v {
			t.Fatalf("decoded %d, want %d", back, v)
		}
	})
}

func FuzzRawString(f *testing.F) {
	f.Add("")
	f.Add("a")
	f.Add(string(make([]byte, 32)))

	f.Fuzz(func(t *testing.T, v string) {
		size, err := RawString(Discard, v)
		if err != nil {
			t.Fatalf("size probe failed: %v", err)
		}

		buf := NewBuffer(size)
		n, err := RawString(buf, v)
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n != size {
			t.Fatalf("size %d != written %d", size, n)
		}

		var back string
		if err := msgpack.Unmarshal(buf.Bytes(), &back); err != nil {
			t.Fatalf("reference decode failed: %v", err)
		}
		if back != v {
			t.Fatalf("decoded %q, want %q", back, v)
		}
	})
}
