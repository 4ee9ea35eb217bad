package datemath

import "errors"

// DateLayout is the ISO calendar date accepted by ParseReference.
const DateLayout = "2006-01-02"

var ErrUnrecognized = errors.New("unrecognized date expression")
