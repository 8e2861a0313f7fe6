// Package flow drives the interactive PHP-FPM selection and confirmation
// protocol: list, select by index, guardrail check, final confirmation,
// execute. Prompts read from an injected reader so the protocol is
// testable without a terminal.
package flow

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hostops/basekeeper/internal/config"
	"github.com/hostops/basekeeper/internal/inventory"
	"github.com/hostops/basekeeper/internal/ledger"
	"github.com/hostops/basekeeper/internal/lifecycle"
	"github.com/hostops/basekeeper/internal/policy"
)

// Flow runs the disable and re-enable protocols.
type Flow struct {
	cfg    config.Config
	inv    *inventory.Inventory
	store  ledger.Store
	exec   *lifecycle.Executor
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a Flow. Prompts are read from in and listings written to out.
func New(cfg config.Config, inv *inventory.Inventory, store ledger.Store, exec *lifecycle.Executor, in io.Reader, out io.Writer, logger *slog.Logger) *Flow {
	return &Flow{
		cfg:    cfg,
		inv:    inv,
		store:  store,
		exec:   exec,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.With("component", "flow"),
	}
}

// RunDisable drives the disable protocol: inventory listing, index
// selection, guardrail check, confirmation, execution. In non-interactive
// mode it performs no mutations and returns immediately.
func (f *Flow) RunDisable() error {
	if f.cfg.NonInteractive {
		f.logger.Info("non-interactive mode, disable flow skipped")
		return nil
	}
	f.enter(stateListing, "disable")

	units, err := f.inv.ListInstalled()
	if err != nil {
		return fmt.Errorf("flow: disable listing: %w", err)
	}
	if len(units) == 0 {
		fmt.Fprintln(f.out, "No PHP-FPM services installed.")
		f.enter(stateDone, "disable")
		return nil
	}
	f.printListing("Installed PHP-FPM services:", units)

	f.enter(stateAwaitingSelection, "disable")
	input := f.readLine(`Services to disable (e.g. "1 3", empty to skip): `)
	if input == "" {
		f.enter(stateDone, "disable")
		return nil
	}

	// Resolve against the displayed snapshot, never a fresh query.
	requested, warnings := resolveSelection(input, units)
	for _, w := range warnings {
		f.logger.Warn(w)
		fmt.Fprintln(f.out, w)
	}

	f.enter(statePendingGuardrailCheck, "disable")
	decision := policy.ValidateDisableRequest(units, requested)
	for _, name := range decision.Dropped {
		f.logger.Warn("requested unit not in inventory, dropped", "unit", name)
	}
	if !decision.Approved {
		f.enter(stateRefused, "disable")
		f.logger.Info("disable request refused", "reason", decision.Reason)
		fmt.Fprintf(f.out, "Refused: %s\n", decision.Reason)
		return nil
	}

	f.enter(stateAwaitingFinalConfirmation, "disable")
	if !f.Confirm(fmt.Sprintf("Disable %s? [y/N]: ", strings.Join(decision.Units, ", "))) {
		f.enter(stateCancelled, "disable")
		return nil
	}

	f.enter(stateExecuting, "disable")
	for _, unit := range decision.Units {
		f.exec.Disable(unit)
	}
	f.enter(stateDone, "disable")
	return nil
}

// RunReenable drives the re-enable protocol over the ledger listing. The
// "all" shortcut selects every ledger entry; there is no guardrail on
// this path, re-enabling is always safe. In non-interactive mode it
// performs no mutations and returns immediately.
func (f *Flow) RunReenable() error {
	if f.cfg.NonInteractive {
		f.logger.Info("non-interactive mode, re-enable flow skipped")
		return nil
	}
	f.enter(stateListing, "reenable")

	entries, err := f.store.List()
	if err != nil {
		return fmt.Errorf("flow: re-enable listing: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(f.out, "No PHP-FPM services recorded as disabled.")
		f.enter(stateDone, "reenable")
		return nil
	}
	f.printListing("PHP-FPM services disabled by basekeeper:", entries)

	f.enter(stateAwaitingSelection, "reenable")
	input := f.readLine(`Services to re-enable (e.g. "1 3" or "all", empty to skip): `)
	if input == "" {
		f.enter(stateDone, "reenable")
		return nil
	}

	var selected []string
	if strings.EqualFold(input, "all") {
		selected = entries
	} else {
		var warnings []string
		selected, warnings = resolveSelection(input, entries)
		for _, w := range warnings {
			f.logger.Warn(w)
			fmt.Fprintln(f.out, w)
		}
	}
	if len(selected) == 0 {
		f.enter(stateDone, "reenable")
		return nil
	}

	f.enter(stateAwaitingFinalConfirmation, "reenable")
	if !f.Confirm(fmt.Sprintf("Re-enable %s? [y/N]: ", strings.Join(selected, ", "))) {
		f.enter(stateCancelled, "reenable")
		return nil
	}

	f.enter(stateExecuting, "reenable")
	for _, unit := range selected {
		f.exec.Enable(unit)
	}
	f.enter(stateDone, "reenable")
	return nil
}

// Confirm asks a yes/no question. Auto-confirm mode answers yes without
// prompting; non-interactive mode answers no. Anything other than "y" or
// "yes" is a no.
func (f *Flow) Confirm(prompt string) bool {
	if f.cfg.AutoConfirm {
		f.logger.Info("auto-confirm enabled, answering yes", "prompt", prompt)
		return true
	}
	if f.cfg.NonInteractive {
		return false
	}
	answer := strings.ToLower(f.readLine(prompt))
	return answer == "y" || answer == "yes"
}

func (f *Flow) enter(s state, path string) {
	f.logger.Info("state transition", "flow", path, "state", s.String())
}

func (f *Flow) printListing(title string, units []string) {
	fmt.Fprintln(f.out, title)
	for i, u := range units {
		fmt.Fprintf(f.out, "  %d) %s\n", i+1, u)
	}
}

func (f *Flow) readLine(prompt string) string {
	fmt.Fprint(f.out, prompt)
	if !f.in.Scan() {
		return ""
	}
	return strings.TrimSpace(f.in.Text())
}
