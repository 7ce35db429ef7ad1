// Package pack writes the message-pack subset understood by the server's
// expression evaluator.
//
// The dialect is deliberately frozen at the old wire revision the server
// speaks:
//
//   - strings use the legacy str family only (fixstr, str16, str32); the
//     str8 marker is never emitted
//   - binary payloads travel under str headers, there is no bin family
//   - integers use the shortest form that holds the value
//
// Every primitive takes a Sink and returns the exact number of bytes it
// wrote. Passing Discard runs the identical code path against a counting
// sink, so a size probe and the later real write cannot diverge.
package pack

import "math"

const (
	markFixMap   = 0x80
	markFixArray = 0x90
	markFixStr   = 0xa0
	markNil      = 0xc0
	markFalse    = 0xc2
	markTrue     = 0xc3
	markFloat64  = 0xcb
	markUint8    = 0xcc
	markUint16   = 0xcd
	markUint32   = 0xce
	markInt8     = 0xd0
	markInt16    = 0xd1
	markInt32    = 0xd2
	markInt64    = 0xd3
	markStr16    = 0xda
	markStr32    = 0xdb
	markArray16  = 0xdc
	markArray32  = 0xdd
	markMap16    = 0xde
	markMap32    = 0xdf
)

func tag1(s Sink, tag byte) (int, error) {
	if err := s.WriteByte(tag); err != nil {
		return 0, err
	}
	return 1, nil
}

func tag2(s Sink, tag byte, v uint8) (int, error) {
	if err := s.WriteByte(tag); err != nil {
		return 0, err
	}
	if err := s.WriteByte(v); err != nil {
		return 1, err
	}
	return 2, nil
}

func tag3(s Sink, tag byte, v uint16) (int, error) {
	if err := s.WriteByte(tag); err != nil {
		return 0, err
	}
	if err := s.WriteByte(byte(v >> 8)); err != nil {
		return 1, err
	}
	if err := s.WriteByte(byte(v)); err != nil {
		return 2, err
	}
	return 3, nil
}

func tag5(s Sink, tag byte, v uint32) (int, error) {
	if err := s.WriteByte(tag); err != nil {
		return 0, err
	}
	for i := 24; i >= 0; i -= 8 {
		if err := s.WriteByte(byte(v >> i)); err != nil {
			return 1 + (24-i)/8, err
		}
	}
	return 5, nil
}

func tag9(s Sink, tag byte, v uint64) (int, error) {
	if err := s.WriteByte(tag); err != nil {
		return 0, err
	}
	for i := 56; i >= 0; i -= 8 {
		if err := s.WriteByte(byte(v >> i)); err != nil {
			return 1 + (56-i)/8, err
		}
	}
	return 9, nil
}

// Byte writes a single raw byte with no marker.
func Byte(s Sink, b byte) (int, error) {
	return tag1(s, b)
}

// Nil writes the nil marker.
func Nil(s Sink) (int, error) {
	return tag1(s, markNil)
}

// Bool writes a boolean marker.
func Bool(s Sink, v bool) (int, error) {
	if v {
		return tag1(s, markTrue)
	}
	return tag1(s, markFalse)
}

// Int writes v in the shortest integer form that holds it.
func Int(s Sink, v int64) (int, error) {
	if v >= 0 {
		switch {
		case v < 1<<7:
			return tag1(s, byte(v))
		case v < 1<<8:
			return tag2(s, markUint8, uint8(v))
		case v < 1<<16:
			return tag3(s, markUint16, uint16(v))
		case v < 1<<32:
			return tag5(s, markUint32, uint32(v))
		default:
			return tag9(s, markInt64, uint64(v))
		}
	}
	switch {
	case v >= -32:
		return tag1(s, byte(v))
	case v >= -(1 << 7):
		return tag2(s, markInt8, uint8(v))
	case v >= -(1 << 15):
		return tag3(s, markInt16, uint16(v))
	case v >= -(1 << 31):
		return tag5(s, markInt32, uint32(v))
	default:
		return tag9(s, markInt64, uint64(v))
	}
}

// Float64 writes v as a big-endian double.
func Float64(s Sink, v float64) (int, error) {
	return tag9(s, markFloat64, math.Float64bits(v))
}

// ArrayHeader writes the header of an array with n elements. The n element
// values follow as separate writes.
func ArrayHeader(s Sink, n int) (int, error) {
	switch {
	case n < 16:
		return tag1(s, markFixArray|byte(n))
	case n < 1<<16:
		return tag3(s, markArray16, uint16(n))
	default:
		return tag5(s, markArray32, uint32(n))
	}
}

// MapHeader writes the header of a map with n key-value pairs.
func MapHeader(s Sink, n int) (int, error) {
	switch {
	case n < 16:
		return tag1(s, markFixMap|byte(n))
	case n < 1<<16:
		return tag3(s, markMap16, uint16(n))
	default:
		return tag5(s, markMap32, uint32(n))
	}
}

// StringHeader writes the header of a string payload of n bytes. The
// payload follows as a separate write.
func StringHeader(s Sink, n int) (int, error) {
	switch {
	case n < 32:
		return tag1(s, markFixStr|byte(n))
	case n < 1<<16:
		return tag3(s, markStr16, uint16(n))
	default:
		return tag5(s, markStr32, uint32(n))
	}
}

// RawString writes v under a string header with no type prefix inside the
// payload. Bin names and regex patterns travel this way.
func RawString(s Sink, v string) (int, error) {
	n, err := StringHeader(s, len(v))
	if err != nil {
		return n, err
	}
	m, err := s.WriteString(v)
	return n + m, err
}

// RawBytes writes p under a string header with no type prefix inside the
// payload.
func RawBytes(s Sink, p []byte) (int, error) {
	n, err := StringHeader(s, len(p))
	if err != nil {
		return n, err
	}
	m, err := s.Write(p)
	return n + m, err
}
