package phys

import "errors"

// Domain errors for construction-time validation. The per-tick path (FieldAt,
// Step) is total and never returns an error for validated inputs.
var (
	// ErrInvalidParameter indicates a construction parameter outside its
	// valid range (mass ≤ 0, permittivity ≤ 0, time scale ≤ 0).
	ErrInvalidParameter = errors.New("phys: invalid parameter")
)
