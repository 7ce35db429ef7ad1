package filterexp

// IntBin creates an expression reading a bin as a 64 bit integer.
func IntBin(name string) Expression {
	return &binExpr{name: name, typ: TypeInt}
}

// StringBin creates an expression reading a bin as a string.
func StringBin(name string) Expression {
	return &binExpr{name: name, typ: TypeString}
}

// BlobBin creates an expression reading a bin as a blob.
func BlobBin(name string) Expression {
	return &binExpr{name: name, typ: TypeBlob}
}

// FloatBin creates an expression reading a bin as a 64 bit float.
func FloatBin(name string) Expression {
	return &binExpr{name: name, typ: TypeFloat}
}

// GeoBin creates an expression reading a bin as a GeoJSON value.
func GeoBin(name string) Expression {
	return &binExpr{name: name, typ: TypeGeo}
}

// ListBin creates an expression reading a bin as a list.
func ListBin(name string) Expression {
	return &binExpr{name: name, typ: TypeList}
}

// MapBin creates an expression reading a bin as a map.
func MapBin(name string) Expression {
	return &binExpr{name: name, typ: TypeMap}
}

// HLLBin creates an expression reading a bin as a HyperLogLog sketch.
func HLLBin(name string) Expression {
	return &binExpr{name: name, typ: TypeHLL}
}

// BinType creates an expression of the bin's storage type code, as found
// in value.ParticleType.
func BinType(name string) Expression {
	return &binTypeExpr{name: name}
}

// BinExists creates an expression that is true when the named bin is
// present in the record. It compares the bin's storage type against the
// null type code.
func BinExists(name string) Expression {
	return Ne(BinType(name), IntVal(0))
}
