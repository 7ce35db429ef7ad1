package filterexp

// MapReturnType selects what a map read operation yields.
type MapReturnType int64

const (
	// MapReturnNone yields nothing.
	MapReturnNone MapReturnType = 0
	// MapReturnIndex yields entry indexes within the key ordering.
	MapReturnIndex MapReturnType = 1
	// MapReturnReverseIndex yields indexes counted from the end.
	MapReturnReverseIndex MapReturnType = 2
	// MapReturnRank yields value ranks.
	MapReturnRank MapReturnType = 3
	// MapReturnReverseRank yields ranks counted from the highest.
	MapReturnReverseRank MapReturnType = 4
	// MapReturnCount yields the number of selected entries.
	MapReturnCount MapReturnType = 5
	// MapReturnKey yields the selected keys.
	MapReturnKey MapReturnType = 6
	// MapReturnValue yields the selected values.
	MapReturnValue MapReturnType = 7
	// MapReturnKeyValue yields the selected entries as a map.
	MapReturnKeyValue MapReturnType = 8
	// MapReturnInverted flips the selection to everything else. Combine
	// it with one of the other return types.
	MapReturnInverted MapReturnType = 0x10000
)

// MapOrder names the stored order of a map bin.
type MapOrder int64

const (
	MapOrderUnordered       MapOrder = 0
	MapOrderKeyOrdered      MapOrder = 1
	MapOrderKeyValueOrdered MapOrder = 3
)

// MapWriteMode selects the create and update behavior of map writes on
// servers that predate write flags.
type MapWriteMode int64

const (
	// MapWriteModeUpdate creates missing entries and updates existing
	// ones.
	MapWriteModeUpdate MapWriteMode = iota
	// MapWriteModeUpdateOnly updates existing entries and fails on
	// missing ones.
	MapWriteModeUpdateOnly
	// MapWriteModeCreateOnly creates missing entries and fails on
	// existing ones.
	MapWriteModeCreateOnly
)

// MapWriteFlags adjust how map write operations behave. Flags combine
// with bitwise OR and take precedence over MapWriteMode when nonzero.
type MapWriteFlags int64

const (
	MapWriteFlagsDefault    MapWriteFlags = 0
	MapWriteFlagsCreateOnly MapWriteFlags = 1
	MapWriteFlagsUpdateOnly MapWriteFlags = 2
	MapWriteFlagsNoFail     MapWriteFlags = 4
	MapWriteFlagsPartial    MapWriteFlags = 8
)

// MapPolicy controls map write operations. The zero value is an unordered
// map with update semantics.
type MapPolicy struct {
	Order     MapOrder
	WriteMode MapWriteMode
	Flags     MapWriteFlags
}

const (
	mapOpAdd                 = 65
	mapOpAddItems            = 66
	mapOpPut                 = 67
	mapOpPutItems            = 68
	mapOpReplace             = 69
	mapOpReplaceItems        = 70
	mapOpIncrement           = 73
	mapOpClear               = 75
	mapOpRemoveByKey         = 76
	mapOpRemoveByIndex       = 77
	mapOpRemoveByRank        = 79
	mapOpRemoveByKeyList     = 81
	mapOpRemoveAllByValue    = 82
	mapOpRemoveByValueList   = 83
	mapOpRemoveByKeyInterval = 84
	mapOpRemoveByIndexRange  = 85
	mapOpRemoveByValueRange  = 86
	mapOpRemoveByRankRange   = 87
	mapOpRemoveByKeyRelIndex = 88
	mapOpRemoveByValueRel    = 89
	mapOpSize                = 96
	mapOpGetByKey            = 97
	mapOpGetByIndex          = 98
	mapOpGetByRank           = 100
	mapOpGetAllByValue       = 102
	mapOpGetByKeyInterval    = 103
	mapOpGetByIndexRange     = 104
	mapOpGetByValueInterval  = 105
	mapOpGetByRankRange      = 106
	mapOpGetByKeyList        = 107
	mapOpGetByValueList      = 108
	mapOpGetByKeyRelIndex    = 109
	mapOpGetByValueRelRank   = 110
)

// mapValueType resolves the type a map read yields for its return type.
func mapValueType(rt MapReturnType) Type {
	switch rt &^ MapReturnInverted {
	case MapReturnKey, MapReturnValue:
		return TypeList
	case MapReturnKeyValue:
		return TypeMap
	default:
		return TypeInt
	}
}

// MapPut creates an expression that writes the key to val mapping into the
// map bin and yields the modified map.
func MapPut(policy MapPolicy, key, val, bin Expression, ctx ...Ctx) Expression {
	var args []callArg
	switch {
	case policy.Flags != 0:
		args = []callArg{
			intArg(mapOpPut),
			exprArg{e: key},
			exprArg{e: val},
			intArg(int64(policy.Order)),
			intArg(int64(policy.Flags)),
			ctxArg{path: ctx},
		}
	case policy.WriteMode == MapWriteModeUpdateOnly:
		// Replace never creates entries, so it carries no map attributes.
		args = []callArg{
			intArg(mapOpReplace),
			exprArg{e: key},
			exprArg{e: val},
			ctxArg{path: ctx},
		}
	case policy.WriteMode == MapWriteModeCreateOnly:
		args = []callArg{
			intArg(mapOpAdd),
			exprArg{e: key},
			exprArg{e: val},
			intArg(int64(policy.Order)),
			ctxArg{path: ctx},
		}
	default:
		args = []callArg{
			intArg(mapOpPut),
			exprArg{e: key},
			exprArg{e: val},
			intArg(int64(policy.Order)),
			ctxArg{path: ctx},
		}
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapPutItems creates an expression that writes all entries of the map
// valued expression into the map bin and yields the modified map.
func MapPutItems(policy MapPolicy, entries, bin Expression, ctx ...Ctx) Expression {
	var args []callArg
	switch {
	case policy.Flags != 0:
		args = []callArg{
			intArg(mapOpPutItems),
			exprArg{e: entries},
			intArg(int64(policy.Order)),
			intArg(int64(policy.Flags)),
			ctxArg{path: ctx},
		}
	case policy.WriteMode == MapWriteModeUpdateOnly:
		args = []callArg{
			intArg(mapOpReplaceItems),
			exprArg{e: entries},
			ctxArg{path: ctx},
		}
	case policy.WriteMode == MapWriteModeCreateOnly:
		args = []callArg{
			intArg(mapOpAddItems),
			exprArg{e: entries},
			intArg(int64(policy.Order)),
			ctxArg{path: ctx},
		}
	default:
		args = []callArg{
			intArg(mapOpPutItems),
			exprArg{e: entries},
			intArg(int64(policy.Order)),
			ctxArg{path: ctx},
		}
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapIncrement creates an expression that adds incr to the value under key
// and yields the modified map.
func MapIncrement(policy MapPolicy, key, incr, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpIncrement),
		exprArg{e: key},
		exprArg{e: incr},
		intArg(int64(policy.Order)),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapClear creates an expression that empties the map bin and yields the
// modified map.
func MapClear(bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpClear),
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByKey creates an expression that removes the entry under key
// and yields the modified map.
func MapRemoveByKey(key, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByKey),
		intArg(int64(MapReturnNone)),
		exprArg{e: key},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByKeyList creates an expression that removes all entries whose
// keys appear in keys and yields the modified map.
func MapRemoveByKeyList(keys, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByKeyList),
		intArg(int64(MapReturnNone)),
		exprArg{e: keys},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByKeyRange creates an expression that removes all entries with
// keys in [begin, end) and yields the modified map.
func MapRemoveByKeyRange(begin, end, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByKeyInterval),
		intArg(int64(MapReturnNone)),
		exprArg{e: begin},
		exprArg{e: end},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByKeyRelativeIndexRange creates an expression that removes
// entries at index offsets from the entry under key, to the end, and
// yields the modified map.
func MapRemoveByKeyRelativeIndexRange(key, idx, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByKeyRelIndex),
		intArg(int64(MapReturnNone)),
		exprArg{e: key},
		exprArg{e: idx},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByKeyRelativeIndexRangeCount is MapRemoveByKeyRelativeIndexRange
// limited to count entries.
func MapRemoveByKeyRelativeIndexRangeCount(key, idx, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByKeyRelIndex),
		intArg(int64(MapReturnNone)),
		exprArg{e: key},
		exprArg{e: idx},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByValue creates an expression that removes all entries whose
// value equals val and yields the modified map.
func MapRemoveByValue(val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveAllByValue),
		intArg(int64(MapReturnNone)),
		exprArg{e: val},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByValueList creates an expression that removes all entries
// whose value appears in list and yields the modified map.
func MapRemoveByValueList(list, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByValueList),
		intArg(int64(MapReturnNone)),
		exprArg{e: list},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByValueRange creates an expression that removes all entries
// with values in [begin, end) and yields the modified map.
func MapRemoveByValueRange(begin, end, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByValueRange),
		intArg(int64(MapReturnNone)),
		exprArg{e: begin},
		exprArg{e: end},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByValueRelativeRankRange creates an expression that removes
// entries at rank offsets from the first entry whose value equals val, to
// the end, and yields the modified map.
func MapRemoveByValueRelativeRankRange(val, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByValueRel),
		intArg(int64(MapReturnNone)),
		exprArg{e: val},
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByValueRelativeRankRangeCount is
// MapRemoveByValueRelativeRankRange limited to count entries.
func MapRemoveByValueRelativeRankRangeCount(val, rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByValueRel),
		intArg(int64(MapReturnNone)),
		exprArg{e: val},
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByIndex creates an expression that removes the entry at index
// and yields the modified map.
func MapRemoveByIndex(idx, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByIndex),
		intArg(int64(MapReturnNone)),
		exprArg{e: idx},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByIndexRange creates an expression that removes all entries
// from index to the end and yields the modified map.
func MapRemoveByIndexRange(idx, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByIndexRange),
		intArg(int64(MapReturnNone)),
		exprArg{e: idx},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByIndexRangeCount is MapRemoveByIndexRange limited to count
// entries.
func MapRemoveByIndexRangeCount(idx, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByIndexRange),
		intArg(int64(MapReturnNone)),
		exprArg{e: idx},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByRank creates an expression that removes the entry whose value
// has the given rank and yields the modified map.
func MapRemoveByRank(rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByRank),
		intArg(int64(MapReturnNone)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByRankRange creates an expression that removes all entries from
// rank to the highest rank and yields the modified map.
func MapRemoveByRankRange(rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByRankRange),
		intArg(int64(MapReturnNone)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapRemoveByRankRangeCount is MapRemoveByRankRange limited to count
// entries.
func MapRemoveByRankRangeCount(rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpRemoveByRankRange),
		intArg(int64(MapReturnNone)),
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addWrite(bin, cdtModule, cdtWriteType(ctx, TypeMap), args)
}

// MapSize creates an expression of the number of entries in the map bin.
func MapSize(bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpSize),
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, TypeInt, args)
}

// MapGetByKey creates an expression of the entry under key, read as
// valueType.
func MapGetByKey(rt MapReturnType, valueType Type, key, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByKey),
		intArg(int64(rt)),
		exprArg{e: key},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, valueType, args)
}

// MapGetByKeyRange creates an expression selecting all entries with keys
// in [begin, end).
func MapGetByKeyRange(rt MapReturnType, begin, end, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByKeyInterval),
		intArg(int64(rt)),
		exprArg{e: begin},
		exprArg{e: end},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByKeyList creates an expression selecting all entries whose keys
// appear in keys.
func MapGetByKeyList(rt MapReturnType, keys, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByKeyList),
		intArg(int64(rt)),
		exprArg{e: keys},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByKeyRelativeIndexRange creates an expression selecting entries at
// index offsets from the entry under key, to the end.
func MapGetByKeyRelativeIndexRange(rt MapReturnType, key, idx, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByKeyRelIndex),
		intArg(int64(rt)),
		exprArg{e: key},
		exprArg{e: idx},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByKeyRelativeIndexRangeCount is MapGetByKeyRelativeIndexRange
// limited to count entries.
func MapGetByKeyRelativeIndexRangeCount(rt MapReturnType, key, idx, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByKeyRelIndex),
		intArg(int64(rt)),
		exprArg{e: key},
		exprArg{e: idx},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByValue creates an expression selecting all entries whose value
// equals val.
func MapGetByValue(rt MapReturnType, val, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetAllByValue),
		intArg(int64(rt)),
		exprArg{e: val},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByValueRange creates an expression selecting all entries with
// values in [begin, end).
func MapGetByValueRange(rt MapReturnType, begin, end, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByValueInterval),
		intArg(int64(rt)),
		exprArg{e: begin},
		exprArg{e: end},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByValueList creates an expression selecting all entries whose
// value appears in list.
func MapGetByValueList(rt MapReturnType, list, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByValueList),
		intArg(int64(rt)),
		exprArg{e: list},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByValueRelativeRankRange creates an expression selecting entries
// at rank offsets from the first entry whose value equals val, to the
// end.
func MapGetByValueRelativeRankRange(rt MapReturnType, val, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByValueRelRank),
		intArg(int64(rt)),
		exprArg{e: val},
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByValueRelativeRankRangeCount is MapGetByValueRelativeRankRange
// limited to count entries.
func MapGetByValueRelativeRankRangeCount(rt MapReturnType, val, rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByValueRelRank),
		intArg(int64(rt)),
		exprArg{e: val},
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByIndex creates an expression of the entry at index, read as
// valueType.
func MapGetByIndex(rt MapReturnType, valueType Type, idx, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByIndex),
		intArg(int64(rt)),
		exprArg{e: idx},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, valueType, args)
}

// MapGetByIndexRange creates an expression selecting all entries from
// index to the end.
func MapGetByIndexRange(rt MapReturnType, idx, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByIndexRange),
		intArg(int64(rt)),
		exprArg{e: idx},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByIndexRangeCount is MapGetByIndexRange limited to count entries.
func MapGetByIndexRangeCount(rt MapReturnType, idx, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByIndexRange),
		intArg(int64(rt)),
		exprArg{e: idx},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByRank creates an expression of the entry whose value has the
// given rank, read as valueType.
func MapGetByRank(rt MapReturnType, valueType Type, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByRank),
		intArg(int64(rt)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, valueType, args)
}

// MapGetByRankRange creates an expression selecting all entries from rank
// to the highest rank.
func MapGetByRankRange(rt MapReturnType, rank, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByRankRange),
		intArg(int64(rt)),
		exprArg{e: rank},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}

// MapGetByRankRangeCount is MapGetByRankRange limited to count entries.
func MapGetByRankRangeCount(rt MapReturnType, rank, count, bin Expression, ctx ...Ctx) Expression {
	args := []callArg{
		intArg(mapOpGetByRankRange),
		intArg(int64(rt)),
		exprArg{e: rank},
		exprArg{e: count},
		ctxArg{path: ctx},
	}
	return addRead(bin, cdtModule, mapValueType(rt), args)
}
