package filterexp

// BitWriteFlags adjust how bitwise write operations behave. Flags combine
// with bitwise OR.
type BitWriteFlags int64

const (
	BitWriteFlagsDefault    BitWriteFlags = 0
	BitWriteFlagsCreateOnly BitWriteFlags = 1
	BitWriteFlagsUpdateOnly BitWriteFlags = 2
	BitWriteFlagsNoFail     BitWriteFlags = 4
	BitWriteFlagsPartial    BitWriteFlags = 8
)

// BitResizeFlags adjust BitResize. Flags combine with bitwise OR.
type BitResizeFlags int64

const (
	BitResizeFlagsDefault    BitResizeFlags = 0
	BitResizeFlagsFromFront  BitResizeFlags = 1
	BitResizeFlagsGrowOnly   BitResizeFlags = 2
	BitResizeFlagsShrinkOnly BitResizeFlags = 4
)

// BitOverflowAction selects what BitAdd and BitSubtract do when the result
// overflows the bit field.
type BitOverflowAction int64

const (
	// BitOverflowFail fails the expression on overflow.
	BitOverflowFail BitOverflowAction = 0
	// BitOverflowSaturate clamps to the largest or smallest value.
	BitOverflowSaturate BitOverflowAction = 2
	// BitOverflowWrap wraps around on overflow.
	BitOverflowWrap BitOverflowAction = 4
)

// BitPolicy controls bitwise write operations. The zero value uses default
// write behavior.
type BitPolicy struct {
	Flags BitWriteFlags
}

const (
	bitOpResize   = 0
	bitOpInsert   = 1
	bitOpRemove   = 2
	bitOpSet      = 3
	bitOpOr       = 4
	bitOpXor      = 5
	bitOpAnd      = 6
	bitOpNot      = 7
	bitOpLShift   = 8
	bitOpRShift   = 9
	bitOpAdd      = 10
	bitOpSubtract = 11
	bitOpSetInt   = 12
	bitOpGet      = 50
	bitOpCount    = 51
	bitOpLScan    = 52
	bitOpRScan    = 53
	bitOpGetInt   = 54

	bitIntFlagsSigned = 1
)

// BitResize creates an expression that resizes the blob bin to byteSize
// bytes and yields the modified blob.
func BitResize(policy BitPolicy, byteSize Expression, resizeFlags BitResizeFlags, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpResize),
		exprArg{e: byteSize},
		intArg(int64(policy.Flags)),
		intArg(int64(resizeFlags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitInsert creates an expression that inserts val bytes at byteOffset and
// yields the modified blob.
func BitInsert(policy BitPolicy, byteOffset, val, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpInsert),
		exprArg{e: byteOffset},
		exprArg{e: val},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitRemove creates an expression that removes byteSize bytes at
// byteOffset and yields the modified blob.
func BitRemove(policy BitPolicy, byteOffset, byteSize, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpRemove),
		exprArg{e: byteOffset},
		exprArg{e: byteSize},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitSet creates an expression that overwrites bitSize bits at bitOffset
// with val and yields the modified blob.
func BitSet(policy BitPolicy, bitOffset, bitSize, val, bin Expression) Expression {
	return bitWriteField(bitOpSet, policy, bitOffset, bitSize, val, bin)
}

// BitOr creates an expression that ors bitSize bits at bitOffset with val
// and yields the modified blob.
func BitOr(policy BitPolicy, bitOffset, bitSize, val, bin Expression) Expression {
	return bitWriteField(bitOpOr, policy, bitOffset, bitSize, val, bin)
}

// BitXor creates an expression that xors bitSize bits at bitOffset with
// val and yields the modified blob.
func BitXor(policy BitPolicy, bitOffset, bitSize, val, bin Expression) Expression {
	return bitWriteField(bitOpXor, policy, bitOffset, bitSize, val, bin)
}

// BitAnd creates an expression that ands bitSize bits at bitOffset with
// val and yields the modified blob.
func BitAnd(policy BitPolicy, bitOffset, bitSize, val, bin Expression) Expression {
	return bitWriteField(bitOpAnd, policy, bitOffset, bitSize, val, bin)
}

func bitWriteField(op int64, policy BitPolicy, bitOffset, bitSize, val, bin Expression) Expression {
	args := []callArg{
		intArg(op),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		exprArg{e: val},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitNot creates an expression that negates bitSize bits at bitOffset and
// yields the modified blob.
func BitNot(policy BitPolicy, bitOffset, bitSize, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpNot),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitLShift creates an expression that shifts bitSize bits at bitOffset
// left by shift and yields the modified blob.
func BitLShift(policy BitPolicy, bitOffset, bitSize, shift, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpLShift),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		exprArg{e: shift},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitRShift creates an expression that shifts bitSize bits at bitOffset
// right by shift and yields the modified blob.
func BitRShift(policy BitPolicy, bitOffset, bitSize, shift, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpRShift),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		exprArg{e: shift},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitAdd creates an expression that adds val to the signed or unsigned
// integer held in bitSize bits at bitOffset and yields the modified blob.
func BitAdd(policy BitPolicy, bitOffset, bitSize, val Expression, signed bool, action BitOverflowAction, bin Expression) Expression {
	return bitMath(bitOpAdd, policy, bitOffset, bitSize, val, signed, action, bin)
}

// BitSubtract creates an expression that subtracts val from the signed or
// unsigned integer held in bitSize bits at bitOffset and yields the
// modified blob.
func BitSubtract(policy BitPolicy, bitOffset, bitSize, val Expression, signed bool, action BitOverflowAction, bin Expression) Expression {
	return bitMath(bitOpSubtract, policy, bitOffset, bitSize, val, signed, action, bin)
}

func bitMath(op int64, policy BitPolicy, bitOffset, bitSize, val Expression, signed bool, action BitOverflowAction, bin Expression) Expression {
	flags := int64(action)
	if signed {
		flags |= bitIntFlagsSigned
	}
	args := []callArg{
		intArg(op),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		exprArg{e: val},
		intArg(int64(policy.Flags)),
		intArg(flags),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitSetInt creates an expression that overwrites bitSize bits at
// bitOffset with the integer val and yields the modified blob.
func BitSetInt(policy BitPolicy, bitOffset, bitSize, val, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpSetInt),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		exprArg{e: val},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, bitModule, TypeBlob, args)
}

// BitGet creates an expression of the bitSize bits at bitOffset as a
// blob.
func BitGet(bitOffset, bitSize, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpGet),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
	}
	return addRead(bin, bitModule, TypeBlob, args)
}

// BitCount creates an expression of the number of set bits among the
// bitSize bits at bitOffset.
func BitCount(bitOffset, bitSize, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpCount),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
	}
	return addRead(bin, bitModule, TypeInt, args)
}

// BitLScan creates an expression of the offset of the first bit equal to
// val, scanning the bitSize bits at bitOffset from the left.
func BitLScan(bitOffset, bitSize, val, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpLScan),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		exprArg{e: val},
	}
	return addRead(bin, bitModule, TypeInt, args)
}

// BitRScan creates an expression of the offset of the last bit equal to
// val, scanning the bitSize bits at bitOffset from the right.
func BitRScan(bitOffset, bitSize, val, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpRScan),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
		exprArg{e: val},
	}
	return addRead(bin, bitModule, TypeInt, args)
}

// BitGetInt creates an expression of the bitSize bits at bitOffset as a
// signed or unsigned integer.
func BitGetInt(bitOffset, bitSize Expression, signed bool, bin Expression) Expression {
	args := []callArg{
		intArg(bitOpGetInt),
		exprArg{e: bitOffset},
		exprArg{e: bitSize},
	}
	if signed {
		args = append(args, intArg(bitIntFlagsSigned))
	}
	return addRead(bin, bitModule, TypeInt, args)
}
