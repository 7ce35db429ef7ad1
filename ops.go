package filterexp

// expOp is the wire code of an expression operation. The table is closed:
// the server rejects codes it does not know, so no constructor accepts a
// caller-supplied code.
type expOp int64

const (
	opEQ           expOp = 1
	opNE           expOp = 2
	opGT           expOp = 3
	opGE           expOp = 4
	opLT           expOp = 5
	opLE           expOp = 6
	opRegex        expOp = 7
	opGeo          expOp = 8
	opAnd          expOp = 16
	opOr           expOp = 17
	opNot          expOp = 18
	opDigestModulo expOp = 64
	opDeviceSize   expOp = 65
	opLastUpdate   expOp = 66
	opSinceUpdate  expOp = 67
	opVoidTime     expOp = 68
	opTTL          expOp = 69
	opSetName      expOp = 70
	opKeyExists    expOp = 71
	opIsTombstone  expOp = 72
	opKey          expOp = 80
	opBin          expOp = 81
	opBinType      expOp = 82
	opQuoted       expOp = 126
	opCall         expOp = 127
)

// Type names the value type an expression yields. Bin accessors carry it
// on the wire and collection reads declare their result with it.
type Type int64

const (
	TypeNil    Type = 0
	TypeBool   Type = 1
	TypeInt    Type = 2
	TypeString Type = 3
	TypeList   Type = 4
	TypeMap    Type = 5
	TypeBlob   Type = 6
	TypeFloat  Type = 7
	TypeGeo    Type = 8
	TypeHLL    Type = 9
)
