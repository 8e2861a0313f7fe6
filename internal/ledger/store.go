// Package ledger persists the set of PHP-FPM units basekeeper has disabled
// and not yet re-enabled. A unit appears in the ledger iff it was disabled
// by this tool and has not since been re-enabled by it; out-of-band changes
// are not tracked.
package ledger

import "fmt"

// Store is the durable disabled-set ledger. All mutations are idempotent:
// recording a present unit and removing an absent one are no-ops.
type Store interface {
	// Initialize creates the storage location with owner-only permissions
	// if it does not exist. Idempotent.
	Initialize() error

	// List returns the recorded unit names, deduplicated and in numeric
	// version order.
	List() ([]string, error)

	// Record adds the unit to the ledger if absent.
	Record(name string) error

	// Remove deletes all occurrences of the unit from the ledger.
	Remove(name string) error
}

// PersistenceError reports a ledger read or write failure. Callers treat it
// as fatal for the affected unit operation only; the batch continues.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
