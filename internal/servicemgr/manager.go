// Package servicemgr abstracts host service management for basekeeper.
package servicemgr

// Manager abstracts service unit queries and lifecycle commands for
// testability. Query methods are read-only and safe to call repeatedly.
// Command methods are best-effort from the caller's perspective: a failed
// call is reported through the returned error and carries no other state.
type Manager interface {
	// ListUnits returns the base names (no ".service" suffix) of all
	// service units matching the given glob, in the order reported by the
	// service manager. An empty result is not an error.
	ListUnits(glob string) ([]string, error)

	// Exists returns true if the service manager knows the named unit,
	// regardless of its enabled or active state.
	Exists(name string) bool

	// Stop stops the named unit.
	Stop(name string) error

	// Disable disables the named unit from starting on boot.
	Disable(name string) error

	// Enable enables the named unit to start on boot.
	Enable(name string) error

	// Start starts the named unit.
	Start(name string) error
}
