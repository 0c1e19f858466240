package gjk

import "errors"

// ErrNonFiniteDirection indicates a search or query direction had a NaN
// or infinite component. Feeding one is a programming error: MinkowskiSupport
// panics with this sentinel rather than propagating NaN through the simplex.
var ErrNonFiniteDirection = errors.New("gjk: direction has non-finite component")
