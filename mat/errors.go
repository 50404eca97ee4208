package mat

import (
	"errors"
)

// ErrArgumentNumber is returned when a matrix is built from anything other
// than exactly 16 values.
var ErrArgumentNumber = errors.New("invalid number of arguments")
