package filterexp

import (
	"github.com/vitalvas/filterexp/pack"
	"github.com/vitalvas/filterexp/value"
)

// Call system selectors. List and map operations share the collection
// system and their code ranges keep them apart; bitwise and HyperLogLog
// operations run in systems of their own.
const (
	cdtModule int64 = 0
	bitModule int64 = 1
	hllModule int64 = 2
)

// modifyFlag marks a call as a write when set on the system selector.
const modifyFlag int64 = 0x40

// callArg is one argument of a collection call. A context argument is not
// counted in the argument array; it emits the descent block ahead of it.
type callArg interface {
	callArg()
}

type valueArg struct {
	v value.Value
}

func (valueArg) callArg() {}

type exprArg struct {
	e Expression
}

func (exprArg) callArg() {}

type ctxArg struct {
	path []Ctx
}

func (ctxArg) callArg() {}

func intArg(v int64) callArg {
	return valueArg{v: value.IntValue(v)}
}

// callExpr invokes a list, map, bitwise or HyperLogLog operation on a
// collection bin. It encodes as a five element array: the call code, the
// declared result type, the system selector, the argument block and the
// bin. The argument block is a counted array of the operation arguments,
// preceded by a context block when the call descends into a nested
// collection; without arguments a single value takes its place.
type callExpr struct {
	returns Type
	flags   int64
	args    []callArg
	val     value.Value
	bin     Expression
}

func (e *callExpr) pack(s pack.Sink) (int, error) {
	size, err := pack.ArrayHeader(s, 5)
	if err != nil {
		return size, err
	}

	n, err := pack.Int(s, int64(opCall))
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.Int(s, int64(e.returns))
	size += n
	if err != nil {
		return size, err
	}

	n, err = pack.Int(s, e.flags)
	size += n
	if err != nil {
		return size, err
	}

	if e.args != nil {
		n, err = e.packArgs(s)
	} else {
		if e.val == nil {
			return size, ErrMissingValue
		}
		n, err = e.val.Pack(s)
	}
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

// packArgs writes the argument block. The first pass counts the real
// arguments and emits any context blocks, which land ahead of the counted
// array header; the second pass writes the arguments themselves. Context
// bytes count toward the total like everything else.
func (e *callExpr) packArgs(s pack.Sink) (int, error) {
	size := 0
	count := 0

	for _, a := range e.args {
		switch arg := a.(type) {
		case valueArg, exprArg:
			count++
		case ctxArg:
			n, err := packContext(s, arg.path)
			size += n
			if err != nil {
				return size, err
			}
		}
	}

	n, err := pack.ArrayHeader(s, count)
	size += n
	if err != nil {
		return size, err
	}

	for _, a := range e.args {
		switch arg := a.(type) {
		case valueArg:
			if arg.v == nil {
				return size, ErrMissingValue
			}
			n, err := arg.v.Pack(s)
			size += n
			if err != nil {
				return size, err
			}
		case exprArg:
			if arg.e == nil {
				return size, ErrNilExpression
			}
			n, err := arg.e.pack(s)
			size += n
			if err != nil {
				return size, err
			}
		}
	}
	return size, nil
}

// addRead builds a call that reads from a collection bin, yielding the
// declared type.
func addRead(bin Expression, module int64, returns Type, args []callArg) Expression {
	return &callExpr{
		returns: returns,
		flags:   module,
		args:    args,
		bin:     bin,
	}
}

// addWrite builds a call that modifies a collection bin. The expression
// yields the rewritten bin content, so returns names the bin's own
// collection type.
func addWrite(bin Expression, module int64, returns Type, args []callArg) Expression {
	return &callExpr{
		returns: returns,
		flags:   module | modifyFlag,
		args:    args,
		bin:     bin,
	}
}

// cdtWriteType resolves the collection type a modify call yields: the kind
// named by the first context step, or the bin's own kind when the call
// operates on the bin directly.
func cdtWriteType(path []Ctx, direct Type) Type {
	if len(path) == 0 {
		return direct
	}
	if path[0].ID&0x10 != 0 {
		return TypeList
	}
	return TypeMap
}
