package dict

import "github.com/pkg/errors"

// Error taxonomy for the hash core. All are fatal to the call that raised
// them; table state is left unmodified.
var (
	// ErrInvalidKey is returned when a key is null/absent where one is
	// required, e.g. a nil interface or nil pointer key.
	ErrInvalidKey = errors.New("dict: invalid (nil) key")

	// ErrKeyNotFound is returned by mandatory-lookup APIs on a missing key.
	ErrKeyNotFound = errors.New("dict: key not found")

	// ErrConcurrentModification is returned by an iterator that observes
	// the table's version counter change mid-iteration.
	ErrConcurrentModification = errors.New("dict: concurrent modification during iteration")

	// ErrCorruption signals an internal invariant violation (e.g. probing
	// exhausted the table without finding a free slot even though the
	// load-factor ceiling guarantees one exists). Not expected to occur.
	ErrCorruption = errors.New("dict: internal invariant violation")
)
