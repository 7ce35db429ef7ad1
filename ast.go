package filterexp

import (
	"github.com/vitalvas/filterexp/pack"
	"github.com/vitalvas/filterexp/value"
)

// compoundExpr is a comparison or boolean connective over child
// expressions. It encodes as an array of the operation code followed by
// the children, so the header length is always one more than the arity.
type compoundExpr struct {
	op       expOp
	children []Expression
}

func (e *compoundExpr) pack(s pack.Sink) (int, error) {
	size, err := pack.ArrayHeader(s, len(e.children)+1)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, int64(e.op))
	size += n
	if err != nil {
		return size, err
	}

	for _, child := range e.children {
		if child == nil {
			return size, ErrNilExpression
		}
		n, err := child.pack(s)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// regexExpr matches a string bin against a POSIX pattern. The pattern is a
// raw string on the wire, not a typed value.
type regexExpr struct {
	flags   RegexFlag
	pattern string
	bin     Expression
}

func (e *regexExpr) pack(s pack.Sink) (int, error) {
	size, err := pack.ArrayHeader(s, 4)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, int64(opRegex))
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.Int(s, int64(e.flags))
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.RawString(s, e.pattern)
	size += n
	if err != nil {
		return size, err
	}

	if e.bin == nil {
		return size, ErrMissingBin
	}
	n, err = e.bin.pack(s)
	return size + n, err
}

// binExpr reads a bin as a declared type.
type binExpr struct {
	name string
	typ  Type
}

func (e *binExpr) pack(s pack.Sink) (int, error) {
	size, err := pack.ArrayHeader(s, 3)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, int64(opBin))
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.Int(s, int64(e.typ))
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.RawString(s, e.name)
	return size + n, err
}

// binTypeExpr reads the storage type code of a bin.
type binTypeExpr struct {
	name string
}

func (e *binTypeExpr) pack(s pack.Sink) (int, error) {
	size, err := pack.ArrayHeader(s, 2)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, int64(opBinType))
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.RawString(s, e.name)
	return size + n, err
}

// opValueExpr is an operation carrying a single value payload.
type opValueExpr struct {
	op  expOp
	val value.Value
}

func (e *opValueExpr) pack(s pack.Sink) (int, error) {
	if e.val == nil {
		return 0, ErrMissingValue
	}

	size, err := pack.ArrayHeader(s, 2)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, int64(e.op))
	size += n
	if err != nil {
		return size, err
	}

	n, err = e.val.Pack(s)
	return size + n, err
}

// opExpr is an operation with no payload.
type opExpr struct {
	op expOp
}

func (e *opExpr) pack(s pack.Sink) (int, error) {
	size, err := pack.ArrayHeader(s, 1)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, int64(e.op))
	return size + n, err
}

// literalExpr is a bare value with no array wrapper.
type literalExpr struct {
	val value.Value
}

func (e *literalExpr) pack(s pack.Sink) (int, error) {
	if e.val == nil {
		return 0, ErrMissingValue
	}
	return e.val.Pack(s)
}
