package filterexp

import "errors"

// ErrNilExpression is returned when an expression, or one of its children,
// is nil.
var ErrNilExpression = errors.New("filterexp: nil expression")

// ErrMissingBin is returned when an operation that acts on a bin was built
// without one.
var ErrMissingBin = errors.New("filterexp: operation requires a bin expression")

// ErrMissingValue is returned when an operation that carries a value was
// built without one.
var ErrMissingValue = errors.New("filterexp: operation requires a value")
