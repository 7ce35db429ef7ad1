package filterexp

import "github.com/vitalvas/filterexp/value"

// Key creates an expression of the record key, read as the given type.
// The key is only available when it was stored with the record.
func Key(t Type) Expression {
	return &opValueExpr{op: opKey, val: value.IntValue(int64(t))}
}

// KeyExists creates an expression that is true when the record stores its
// primary key in metadata.
func KeyExists() Expression {
	return &opExpr{op: opKeyExists}
}

// SetName creates an expression of the record's set name.
func SetName() Expression {
	return &opExpr{op: opSetName}
}

// DeviceSize creates an expression of the record's size on disk in bytes.
// Memory-only namespaces report zero.
func DeviceSize() Expression {
	return &opExpr{op: opDeviceSize}
}

// LastUpdate creates an expression of the record's last update time, in
// nanoseconds since the epoch.
func LastUpdate() Expression {
	return &opExpr{op: opLastUpdate}
}

// SinceUpdate creates an expression of the milliseconds elapsed since the
// record was last updated.
func SinceUpdate() Expression {
	return &opExpr{op: opSinceUpdate}
}

// VoidTime creates an expression of the record's expiration time, in
// nanoseconds since the epoch.
func VoidTime() Expression {
	return &opExpr{op: opVoidTime}
}

// TTL creates an expression of the seconds remaining until the record
// expires.
func TTL() Expression {
	return &opExpr{op: opTTL}
}

// IsTombstone creates an expression that is true for deleted records still
// in tombstone state.
func IsTombstone() Expression {
	return &opExpr{op: opIsTombstone}
}

// DigestModulo creates an expression of the record digest modulo m,
// useful for splitting a scan into disjoint slices.
func DigestModulo(m int64) Expression {
	return &opValueExpr{op: opDigestModulo, val: value.IntValue(m)}
}
