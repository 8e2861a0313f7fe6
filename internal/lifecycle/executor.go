// Package lifecycle applies approved disable and enable actions to the
// service manager and keeps the ledger consistent with the tool's intent.
package lifecycle

import (
	"log/slog"

	"github.com/hostops/basekeeper/internal/ledger"
	"github.com/hostops/basekeeper/internal/servicemgr"
)

// Executor performs per-unit service actions. Every service-manager call is
// best-effort: failures are logged and never abort the unit or the batch.
// The ledger write is the last step of each unit's processing so an
// interrupt leaves at most one unit's ledger state in doubt.
type Executor struct {
	mgr    servicemgr.Manager
	store  ledger.Store
	logger *slog.Logger
}

// NewExecutor creates an Executor over the given service manager and ledger.
func NewExecutor(mgr servicemgr.Manager, store ledger.Store, logger *slog.Logger) *Executor {
	return &Executor{
		mgr:    mgr,
		store:  store,
		logger: logger.With("component", "lifecycle"),
	}
}

// Disable stops and disables the unit, then records it in the ledger.
// The ledger records intent-plus-attempt: it is updated even when the
// stop or disable call fails, so re-enable stays discoverable. A unit
// unknown to the service manager is skipped without a ledger write.
func (e *Executor) Disable(unit string) {
	if !e.mgr.Exists(unit) {
		e.logger.Warn("unit does not exist, skipping", "unit", unit)
		return
	}

	if err := e.mgr.Stop(unit); err != nil {
		e.logger.Warn("stop failed", "unit", unit, "error", err)
	} else {
		e.logger.Info("stopped", "unit", unit)
	}

	if err := e.mgr.Disable(unit); err != nil {
		e.logger.Warn("disable failed", "unit", unit, "error", err)
	} else {
		e.logger.Info("disabled", "unit", unit)
	}

	if err := e.store.Record(unit); err != nil {
		e.logger.Error("ledger update failed", "unit", unit, "error", err)
		return
	}
	e.logger.Info("recorded in ledger", "unit", unit)
}

// Enable re-enables and starts the unit, then removes its ledger entry.
// If the unit no longer exists, the stale ledger entry is removed and no
// service calls are made. The ledger entry is removed regardless of the
// enable or start outcome.
func (e *Executor) Enable(unit string) {
	if !e.mgr.Exists(unit) {
		e.logger.Info("unit no longer exists, dropping stale ledger entry", "unit", unit)
		if err := e.store.Remove(unit); err != nil {
			e.logger.Error("ledger update failed", "unit", unit, "error", err)
		}
		return
	}

	if err := e.mgr.Enable(unit); err != nil {
		e.logger.Warn("enable failed", "unit", unit, "error", err)
	} else {
		e.logger.Info("enabled", "unit", unit)
	}

	if err := e.mgr.Start(unit); err != nil {
		e.logger.Warn("start failed", "unit", unit, "error", err)
	} else {
		e.logger.Info("started", "unit", unit)
	}

	if err := e.store.Remove(unit); err != nil {
		e.logger.Error("ledger update failed", "unit", unit, "error", err)
		return
	}
	e.logger.Info("removed from ledger", "unit", unit)
}
