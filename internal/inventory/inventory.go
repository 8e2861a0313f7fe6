// Package inventory enumerates the PHP-FPM service units installed on the
// host. It is a read-only view over the service manager: units are
// discovered fresh on each query and never persisted.
package inventory

import (
	"fmt"

	"github.com/hostops/basekeeper/internal/phpfpm"
	"github.com/hostops/basekeeper/internal/servicemgr"
)

// Inventory queries the service manager for PHP-FPM units.
type Inventory struct {
	mgr servicemgr.Manager
}

// New creates an Inventory backed by the given service manager.
func New(mgr servicemgr.Manager) *Inventory {
	return &Inventory{mgr: mgr}
}

// ListInstalled returns all installed PHP-FPM units in numeric version
// order. An empty result means no PHP-FPM is installed and is not an error.
func (inv *Inventory) ListInstalled() ([]string, error) {
	names, err := inv.mgr.ListUnits(phpfpm.UnitGlob)
	if err != nil {
		return nil, fmt.Errorf("inventory: list units: %w", err)
	}

	var units []string
	for _, name := range names {
		if phpfpm.IsUnit(name) {
			units = append(units, name)
		}
	}
	phpfpm.Sort(units)
	return units, nil
}

// Exists returns true if the service manager knows the named unit,
// regardless of its enabled or active state.
func (inv *Inventory) Exists(name string) bool {
	return phpfpm.IsUnit(name) && inv.mgr.Exists(name)
}
