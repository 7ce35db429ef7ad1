package filterexp

// ListReturnType selects what a list read operation yields.
type ListReturnType int64

const (
	// ListReturnNone yields nothing.
	ListReturnNone ListReturnType = 0
	// ListReturnIndex yields element indexes.
	ListReturnIndex ListReturnType = 1
	// ListReturnReverseIndex yields indexes counted from the end.
	ListReturnReverseIndex ListReturnType = 2
	// ListReturnRank yields element ranks.
	ListReturnRank ListReturnType = 3
	// ListReturnReverseRank yields ranks counted from the highest.
	ListReturnReverseRank ListReturnType = 4
	// ListReturnCount yields the number of selected elements.
	ListReturnCount ListReturnType = 5
	// ListReturnValues yields the selected element values.
	ListReturnValues ListReturnType = 7
	// ListReturnInverted flips the selection to everything else. Combine
	// it with one of the other return types.
	ListReturnInverted ListReturnType = 0x10000
)

// ListOrder names the stored order of a list bin.
type ListOrder int64

const (
	ListOrderUnordered ListOrder = 0
	ListOrderOrdered   ListOrder = 1
)

// ListWriteFlags adjust how list write operations behave. Flags combine
// with bitwise OR.
type ListWriteFlags int64

const (
	ListWriteFlagsDefault       ListWriteFlags = 0
	ListWriteFlagsAddUnique     ListWriteFlags = 1
	ListWriteFlagsInsertBounded ListWriteFlags = 2
	ListWriteFlagsNoFail        ListWriteFlags = 4
	ListWriteFlagsPartial       ListWriteFlags = 8
)

// ListSortFlags adjust ListSort. Flags combine with bitwise OR.
type ListSortFlags int64

const (
	ListSortFlagsDefault        ListSortFlags = 0
	ListSortFlagsDescending     ListSortFlags = 1
	ListSortFlagsDropDuplicates ListSortFlags = 2
)

// ListPolicy controls list write operations. The zero value is an
// unordered list with default write behavior.
type ListPolicy struct {
	Order ListOrder
	Flags ListWriteFlags
}

const (
	listOpAppend                = 1
	listOpAppendItems           = 2
	listOpInsert                = 3
	listOpInsertItems           = 4
	listOpSet                   = 9
	listOpClear                 = 11
	listOpIncrement             = 12
	listOpSort                  = 13
	listOpSize                  = 16
	listOpGetByIndex            = 19
	listOpGetByIndexRange       = 20
	listOpGetByRank             = 21
	listOpGetByRankRange        = 22
	listOpGetByValue            = 23
	listOpGetByValueList        = 24
	listOpGetByValueInterval    = 25
	listOpGetByValueRelRank     = 26
	listOpRemoveByIndex         = 32
	listOpRemoveByIndexRange    = 33
	listOpRemoveByRank          = 34
	listOpRemoveByRankRange     = 35
	listOpRemoveByValue         = 36
	listOpRemoveByValueList     = 37
	listOpRemoveByValueInterval = 38
	listOpRemoveByValueRelRank  = 39
)

// listValueType resolves the type a list read yields for its return type.
func listValueType(rt ListReturnType) Type {
	if rt&^ListReturnInverted == ListReturnValues {
		return TypeList
	}
	return TypeInt
}

// ListAppend creates an expression that appends val to the list bin and
// yields the modified list.
func ListAppend(policy ListPolicy, val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpAppend),
		exprArg{e: val},
		intArg(int64(policy.Order)),
		intArg(int64(policy.Flags)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListAppendItems creates an expression that appends a list of items to
// the list bin and yields the modified list.
func ListAppendItems(policy ListPolicy, list, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpAppendItems),
		exprArg{e: list},
		intArg(int64(policy.Order)),
		intArg(int64(policy.Flags)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListInsert creates an expression that inserts val at index and yields
// the modified list.
func ListInsert(policy ListPolicy, index, val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpInsert),
		exprArg{e: index},
		exprArg{e: val},
		intArg(int64(policy.Flags)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListInsertItems creates an expression that inserts a list of items at
// index and yields the modified list.
func ListInsertItems(policy ListPolicy, index, list, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpInsertItems),
		exprArg{e: index},
		exprArg{e: list},
		intArg(int64(policy.Flags)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListIncrement creates an expression that adds val to the element at
// index and yields the modified list.
func ListIncrement(policy ListPolicy, index, val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpIncrement),
		exprArg{e: index},
		exprArg{e: val},
		intArg(int64(policy.Order)),
		intArg(int64(policy.Flags)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListSet creates an expression that replaces the element at index with
// val and yields the modified list.
func ListSet(policy ListPolicy, index, val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpSet),
		exprArg{e: index},
		exprArg{e: val},
		intArg(int64(policy.Flags)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListClear creates an expression that empties the list bin and yields the
// modified list.
func ListClear(bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpClear),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListSort creates an expression that sorts the list bin and yields the
// modified list.
func ListSort(sortFlags ListSortFlags, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpSort),
		intArg(int64(sortFlags)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByValue creates an expression that removes all elements equal
// to val and yields the modified list.
func ListRemoveByValue(val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByValue),
		intArg(int64(ListReturnNone)),
		exprArg{e: val},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByValueList creates an expression that removes all elements
// equal to any item in list and yields the modified list.
func ListRemoveByValueList(list, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByValueList),
		intArg(int64(ListReturnNone)),
		exprArg{e: list},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByValueRange creates an expression that removes elements with
// values in [begin, end) and yields the modified list.
func ListRemoveByValueRange(begin, end, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByValueInterval),
		intArg(int64(ListReturnNone)),
		exprArg{e: begin},
		exprArg{e: end},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByValueRelativeRankRange creates an expression that removes
// elements at rank offsets from the first element equal to val, to the
// end, and yields the modified list.
func ListRemoveByValueRelativeRankRange(val, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByValueRelRank),
		intArg(int64(ListReturnNone)),
		exprArg{e: val},
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByValueRelativeRankRangeCount is ListRemoveByValueRelativeRankRange
// limited to count elements.
func ListRemoveByValueRelativeRankRangeCount(val, rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByValueRelRank),
		intArg(int64(ListReturnNone)),
		exprArg{e: val},
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByIndex creates an expression that removes the element at
// index and yields the modified list.
func ListRemoveByIndex(index, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByIndex),
		intArg(int64(ListReturnNone)),
		exprArg{e: index},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByIndexRange creates an expression that removes all elements
// from index to the end and yields the modified list.
func ListRemoveByIndexRange(index, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByIndexRange),
		intArg(int64(ListReturnNone)),
		exprArg{e: index},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByIndexRangeCount is ListRemoveByIndexRange limited to count
// elements.
func ListRemoveByIndexRangeCount(index, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByIndexRange),
		intArg(int64(ListReturnNone)),
		exprArg{e: index},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByRank creates an expression that removes the element with the
// given rank and yields the modified list.
func ListRemoveByRank(rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByRank),
		intArg(int64(ListReturnNone)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByRankRange creates an expression that removes all elements
// from rank to the highest rank and yields the modified list.
func ListRemoveByRankRange(rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByRankRange),
		intArg(int64(ListReturnNone)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListRemoveByRankRangeCount is ListRemoveByRankRange limited to count
// elements.
func ListRemoveByRankRangeCount(rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpRemoveByRankRange),
		intArg(int64(ListReturnNone)),
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeList), args)
}

// ListSize creates an expression of the number of elements in the list
// bin.
func ListSize(bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpSize),
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, TypeInt, args)
}

// ListGetByValue creates an expression selecting all elements equal to
// val.
func ListGetByValue(rt ListReturnType, val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByValue),
		intArg(int64(rt)),
		exprArg{e: val},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByValueRange creates an expression selecting elements with values
// in [begin, end).
func ListGetByValueRange(rt ListReturnType, begin, end, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByValueInterval),
		intArg(int64(rt)),
		exprArg{e: begin},
		exprArg{e: end},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByValueList creates an expression selecting elements equal to any
// item in list.
func ListGetByValueList(rt ListReturnType, list, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByValueList),
		intArg(int64(rt)),
		exprArg{e: list},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByValueRelativeRankRange creates an expression selecting elements
// at rank offsets from the first element equal to val, to the end.
func ListGetByValueRelativeRankRange(rt ListReturnType, val, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByValueRelRank),
		intArg(int64(rt)),
		exprArg{e: val},
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByValueRelativeRankRangeCount is ListGetByValueRelativeRankRange
// limited to count elements.
func ListGetByValueRelativeRankRangeCount(rt ListReturnType, val, rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByValueRelRank),
		intArg(int64(rt)),
		exprArg{e: val},
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByIndex creates an expression of the element at index, read as
// valueType.
func ListGetByIndex(rt ListReturnType, valueType Type, index, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByIndex),
		intArg(int64(rt)),
		exprArg{e: index},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, valueType, args)
}

// ListGetByIndexRange creates an expression selecting all elements from
// index to the end.
func ListGetByIndexRange(rt ListReturnType, index, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByIndexRange),
		intArg(int64(rt)),
		exprArg{e: index},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByIndexRangeCount is ListGetByIndexRange limited to count
// elements.
func ListGetByIndexRangeCount(rt ListReturnType, index, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByIndexRange),
		intArg(int64(rt)),
		exprArg{e: index},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByRank creates an expression of the element with the given rank,
// read as valueType.
func ListGetByRank(rt ListReturnType, valueType Type, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByRank),
		intArg(int64(rt)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, valueType, args)
}

// ListGetByRankRange creates an expression selecting all elements from
// rank to the highest rank.
func ListGetByRankRange(rt ListReturnType, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByRankRange),
		intArg(int64(rt)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}

// ListGetByRankRangeCount is ListGetByRankRange limited to count elements.
func ListGetByRankRangeCount(rt ListReturnType, rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(listOpGetByRankRange),
		intArg(int64(rt)),
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, listValueType(rt), args)
}
