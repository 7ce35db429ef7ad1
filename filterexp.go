// Package filterexp builds record filter expressions and compiles them to
// the compact wire form the server evaluates against each record.
//
// A filter is a tree assembled from the constructor functions in this
// package: bin accessors, record metadata accessors, literals, comparisons
// and boolean connectives, plus list, map, bitwise and HyperLogLog
// operations on collection bins. The tree is immutable once built and safe
// to encode from multiple goroutines.
//
// On the wire every node is a small array tagged by an operation code,
// for example:
//
//	[3: AND, left, right]     boolean connective with two children
//	[3: 81, type, "name"]     bin accessor
//	[1: 70]                   record set name
//
// Literals encode as bare values with no array wrapper, and list literals
// travel inside a quoting wrapper so the evaluator reads them as data
// rather than as a nested operation.
//
// Encoding is two-phase: a size probe runs the exact same code path
// against a counting sink, then the caller allocates once and the write
// pass fills it. Encode does both; Size and EncodeTo expose the phases to
// callers that manage their own buffers.
package filterexp

import "github.com/vitalvas/filterexp/pack"

// Expression is one node of a filter tree. Implementations all live in
// this package; use the constructor functions to build them.
type Expression interface {
	pack(s pack.Sink) (int, error)
}

// Size returns the encoded size of e in bytes without producing output.
func Size(e Expression) (int, error) {
	if e == nil {
		return 0, ErrNilExpression
	}
	return e.pack(pack.Discard)
}

// EncodeTo writes the encoded form of e to s and returns the number of
// bytes written. A nil sink counts instead of writing, returning the same
// total a real write would produce.
func EncodeTo(e Expression, s pack.Sink) (int, error) {
	if e == nil {
		return 0, ErrNilExpression
	}
	if s == nil {
		s = pack.Discard
	}
	return e.pack(s)
}

// Encode returns the wire bytes of e. It probes the size first and
// allocates the result buffer exactly once.
func Encode(e Expression) ([]byte, error) {
	size, err := Size(e)
	if err != nil {
		return nil, err
	}

	buf := pack.NewBuffer(size)
	if _, err := EncodeTo(e, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
