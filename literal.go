package filterexp

import "github.com/vitalvas/filterexp/value"

// IntVal creates a 64 bit integer literal.
func IntVal(v int64) Expression {
	return &literalExpr{val: value.IntValue(v)}
}

// BoolVal creates a boolean literal.
func BoolVal(v bool) Expression {
	return &literalExpr{val: value.BoolValue(v)}
}

// StringVal creates a string literal.
func StringVal(v string) Expression {
	return &literalExpr{val: value.StringValue(v)}
}

// FloatVal creates a 64 bit float literal.
func FloatVal(v float64) Expression {
	return &literalExpr{val: value.FloatValue(v)}
}

// BlobVal creates a blob literal.
func BlobVal(v []byte) Expression {
	return &literalExpr{val: value.BytesValue(v)}
}

// GeoVal creates a geospatial region literal from its GeoJSON text.
func GeoVal(v string) Expression {
	return &literalExpr{val: value.StringValue(v)}
}

// NilVal creates the nil literal.
func NilVal() Expression {
	return &literalExpr{val: value.NilValue{}}
}

// ListVal creates a list literal. On the wire the list travels inside a
// quoting wrapper so the evaluator reads it as data instead of a nested
// operation.
func ListVal(vals ...value.Value) Expression {
	return &opValueExpr{op: opQuoted, val: value.ListValue(vals)}
}

// MapVal creates a map literal from ordered key-value pairs.
func MapVal(pairs ...value.MapPair) Expression {
	return &literalExpr{val: value.MapValue(pairs)}
}
