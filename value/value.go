// Package value models the literal values a filter expression can carry
// and packs them into the evaluator's wire form.
//
// Strings, blobs and GeoJSON regions travel inside a string payload whose
// first byte names the storage type, so their headers declare the payload
// length plus one. Integers, floats, booleans, nil, lists and maps use
// their plain message-pack forms with no prefix.
package value

import (
	"fmt"
	"strings"

	"github.com/vitalvas/filterexp/pack"
)

// ParticleType identifies the server-side storage type of a value.
type ParticleType int

const (
	ParticleNull    ParticleType = 0
	ParticleInteger ParticleType = 1
	ParticleFloat   ParticleType = 2
	ParticleString  ParticleType = 3
	ParticleBlob    ParticleType = 4
	ParticleDigest  ParticleType = 6
	ParticleBool    ParticleType = 17
	ParticleHLL     ParticleType = 18
	ParticleMap     ParticleType = 19
	ParticleList    ParticleType = 20
	ParticleGeoJSON ParticleType = 23
)

// Value is the interface that all literal value types implement.
type Value interface {
	Type() ParticleType
	Pack(s pack.Sink) (int, error)
	String() string
}

// packTyped writes a string-family payload carrying its storage type in
// the first byte.
func packTyped(s pack.Sink, particle ParticleType, payload string) (int, error) {
	n, err := pack.StringHeader(s, len(payload)+1)
	if err != nil {
		return n, err
	}
	m, err := pack.Byte(s, byte(particle))
	if err != nil {
		return n + m, err
	}
	k, err := s.WriteString(payload)
	return n + m + k, err
}

// NilValue represents the absent value.
type NilValue struct{}

func (NilValue) Type() ParticleType { return ParticleNull }
func (NilValue) String() string     { return "<nil>" }
func (NilValue) Pack(s pack.Sink) (int, error) {
	return pack.Nil(s)
}

// BoolValue represents a boolean value.
type BoolValue bool

func (b BoolValue) Type() ParticleType { return ParticleBool }
func (b BoolValue) String() string     { return fmt.Sprintf("%t", bool(b)) }
func (b BoolValue) Pack(s pack.Sink) (int, error) {
	return pack.Bool(s, bool(b))
}

// IntValue represents a signed integer value.
type IntValue int64

func (i IntValue) Type() ParticleType { return ParticleInteger }
func (i IntValue) String() string     { return fmt.Sprintf("%d", int64(i)) }
func (i IntValue) Pack(s pack.Sink) (int, error) {
	return pack.Int(s, int64(i))
}

// FloatValue represents a 64-bit float value.
type FloatValue float64

func (f FloatValue) Type() ParticleType { return ParticleFloat }
func (f FloatValue) String() string     { return fmt.Sprintf("%v", float64(f)) }
func (f FloatValue) Pack(s pack.Sink) (int, error) {
	return pack.Float64(s, float64(f))
}

// StringValue represents a string value.
type StringValue string

func (v StringValue) Type() ParticleType { return ParticleString }
func (v StringValue) String() string     { return string(v) }
func (v StringValue) Pack(s pack.Sink) (int, error) {
	return packTyped(s, ParticleString, string(v))
}

// BytesValue represents a blob value.
type BytesValue []byte

func (b BytesValue) Type() ParticleType { return ParticleBlob }
func (b BytesValue) String() string     { return fmt.Sprintf("%x", []byte(b)) }
func (b BytesValue) Pack(s pack.Sink) (int, error) {
	n, err := pack.StringHeader(s, len(b)+1)
	if err != nil {
		return n, err
	}
	m, err := pack.Byte(s, byte(ParticleBlob))
	if err != nil {
		return n + m, err
	}
	k, err := s.Write(b)
	return n + m + k, err
}

// GeoJSONValue represents a GeoJSON region or point. The payload is passed
// through verbatim; the server parses it.
type GeoJSONValue string

func (g GeoJSONValue) Type() ParticleType { return ParticleGeoJSON }
func (g GeoJSONValue) String() string     { return string(g) }
func (g GeoJSONValue) Pack(s pack.Sink) (int, error) {
	return packTyped(s, ParticleGeoJSON, string(g))
}

// ListValue represents an ordered list of values.
type ListValue []Value

func (l ListValue) Type() ParticleType { return ParticleList }
func (l ListValue) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		if v == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l ListValue) Pack(s pack.Sink) (int, error) {
	size, err := pack.ArrayHeader(s, len(l))
	if err != nil {
		return size, err
	}
	for _, v := range l {
		if v == nil {
			return size, ErrNilValue
		}
		n, err := v.Pack(s)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// MapPair is one key-value entry of a MapValue.
type MapPair struct {
	Key   Value
	Value Value
}

// Pair builds a MapPair.
func Pair(k, v Value) MapPair {
	return MapPair{Key: k, Value: v}
}

// MapValue represents a map as an ordered list of key-value pairs. Pair
// order is preserved on the wire, so encoding the same MapValue twice
// yields identical bytes.
type MapValue []MapPair

func (m MapValue) Type() ParticleType { return ParticleMap }
func (m MapValue) String() string {
	parts := make([]string, len(m))
	for i, p := range m {
		k, v := "<nil>", "<nil>"
		if p.Key != nil {
			k = p.Key.String()
		}
		if p.Value != nil {
			v = p.Value.String()
		}
		parts[i] = k + ": " + v
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (m MapValue) Pack(s pack.Sink) (int, error) {
	size, err := pack.MapHeader(s, len(m))
	if err != nil {
		return size, err
	}
	for _, p := range m {
		if p.Key == nil || p.Value == nil {
			return size, ErrNilValue
		}
		n, err := p.Key.Pack(s)
		size += n
		if err != nil {
			return size, err
		}
		n, err = p.Value.Pack(s)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}
