package filterexp

// HLLWriteFlags adjust how HyperLogLog write operations behave. Flags
// combine with bitwise OR.
type HLLWriteFlags int64

const (
	HLLWriteFlagsDefault    HLLWriteFlags = 0
	HLLWriteFlagsCreateOnly HLLWriteFlags = 1
	HLLWriteFlagsUpdateOnly HLLWriteFlags = 2
	HLLWriteFlagsNoFail     HLLWriteFlags = 4
	HLLWriteFlagsAllowFold  HLLWriteFlags = 8
)

// HLLPolicy controls HyperLogLog write operations. The zero value uses
// default write behavior.
type HLLPolicy struct {
	Flags HLLWriteFlags
}

const (
	hllOpInit           = 0
	hllOpAdd            = 1
	hllOpCount          = 50
	hllOpUnion          = 51
	hllOpUnionCount     = 52
	hllOpIntersectCount = 53
	hllOpSimilarity     = 54
	hllOpDescribe       = 55
	hllOpMayContain     = 56
)

// HLLInit creates an expression that initializes the bin to an empty
// sketch with indexBitCount index bits and yields the modified sketch.
func HLLInit(policy HLLPolicy, indexBitCount, bin Expression) Expression {
	return HLLInitWithMinHash(policy, indexBitCount, IntVal(-1), bin)
}

// HLLInitWithMinHash is HLLInit with minHashBitCount minhash bits for
// similarity estimation.
func HLLInitWithMinHash(policy HLLPolicy, indexBitCount, minHashBitCount, bin Expression) Expression {
	args := []callArg{
		intArg(hllOpInit),
		exprArg{e: indexBitCount},
		exprArg{e: minHashBitCount},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, hllModule, TypeHLL, args)
}

// HLLAdd creates an expression that adds the list of values to the sketch
// and yields the modified sketch.
func HLLAdd(policy HLLPolicy, list, bin Expression) Expression {
	return HLLAddWithIndexAndMinHash(policy, list, IntVal(-1), IntVal(-1), bin)
}

// HLLAddWithIndex is HLLAdd creating the sketch with indexBitCount index
// bits when the bin does not exist yet.
func HLLAddWithIndex(policy HLLPolicy, list, indexBitCount, bin Expression) Expression {
	return HLLAddWithIndexAndMinHash(policy, list, indexBitCount, IntVal(-1), bin)
}

// HLLAddWithIndexAndMinHash is HLLAddWithIndex with minHashBitCount
// minhash bits.
func HLLAddWithIndexAndMinHash(policy HLLPolicy, list, indexBitCount, minHashBitCount, bin Expression) Expression {
	args := []callArg{
		intArg(hllOpAdd),
		exprArg{e: list},
		exprArg{e: indexBitCount},
		exprArg{e: minHashBitCount},
		intArg(int64(policy.Flags)),
	}
	return addWrite(bin, hllModule, TypeHLL, args)
}

// HLLGetCount creates an expression of the estimated number of distinct
// elements in the sketch.
func HLLGetCount(bin Expression) Expression {
	args := []callArg{
		intArg(hllOpCount),
	}
	return addRead(bin, hllModule, TypeInt, args)
}

// HLLGetUnion creates an expression of the union of the sketch with the
// list of sketches.
func HLLGetUnion(list, bin Expression) Expression {
	args := []callArg{
		intArg(hllOpUnion),
		exprArg{e: list},
	}
	return addRead(bin, hllModule, TypeHLL, args)
}

// HLLGetUnionCount creates an expression of the estimated number of
// distinct elements in the union of the sketch with the list of sketches.
func HLLGetUnionCount(list, bin Expression) Expression {
	args := []callArg{
		intArg(hllOpUnionCount),
		exprArg{e: list},
	}
	return addRead(bin, hllModule, TypeInt, args)
}

// HLLGetIntersectCount creates an expression of the estimated number of
// elements shared by the sketch and the list of sketches.
func HLLGetIntersectCount(list, bin Expression) Expression {
	args := []callArg{
		intArg(hllOpIntersectCount),
		exprArg{e: list},
	}
	return addRead(bin, hllModule, TypeInt, args)
}

// HLLGetSimilarity creates an expression of the estimated similarity
// between the sketch and the list of sketches, from 0 to 1.
func HLLGetSimilarity(list, bin Expression) Expression {
	args := []callArg{
		intArg(hllOpSimilarity),
		exprArg{e: list},
	}
	return addRead(bin, hllModule, TypeFloat, args)
}

// HLLDescribe creates an expression of the sketch's index and minhash bit
// counts as a two element list.
func HLLDescribe(bin Expression) Expression {
	args := []callArg{
		intArg(hllOpDescribe),
	}
	return addRead(bin, hllModule, TypeList, args)
}

// HLLMayContain creates an expression that is one when the sketch may
// contain all values in the list and zero when it definitely does not.
func HLLMayContain(list, bin Expression) Expression {
	args := []callArg{
		intArg(hllOpMayContain),
		exprArg{e: list},
	}
	return addRead(bin, hllModule, TypeInt, args)
}
