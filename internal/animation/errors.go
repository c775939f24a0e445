package animation

import "errors"

// ErrInvalidConfig is wrapped by every error returned while constructing a
// spring or an interpolator.
var ErrInvalidConfig = errors.New("invalid animation config")
