// Package index enumerates the secondary index kinds a query layer names
// when declaring indexes on bins.
package index

// Type selects what a secondary index stores for each record.
type Type uint8

const (
	// Numeric indexes integer bin values.
	Numeric Type = iota
	// String indexes string bin values.
	String
	// Geo2DSphere indexes GeoJSON bin values for region queries.
	Geo2DSphere
)

// String returns the token the server expects in index commands.
func (t Type) String() string {
	switch t {
	case Numeric:
		return "NUMERIC"
	case String:
		return "STRING"
	case Geo2DSphere:
		return "GEO2DSPHERE"
	default:
		return ""
	}
}

// CollectionType narrows an index on a collection bin to the part of the
// collection it covers.
type CollectionType uint8

const (
	// Default indexes the bin value itself. It is never named on the
	// wire, so its token is empty.
	Default CollectionType = iota
	// List indexes the elements of list bins.
	List
	// MapKeys indexes the keys of map bins.
	MapKeys
	// MapValues indexes the values of map bins.
	MapValues
)

// String returns the token the server expects, or an empty string for
// Default.
func (c CollectionType) String() string {
	switch c {
	case List:
		return "LIST"
	case MapKeys:
		return "MAPKEYS"
	case MapValues:
		return "MAPVALUES"
	default:
		return ""
	}
}
