package value

import "errors"

// ErrNilValue is returned when a list element or map pair holds a nil
// Value interface.
var ErrNilValue = errors.New("value: nil value")
