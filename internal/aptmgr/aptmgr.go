// Package aptmgr is the apt-get collaborator: straight-line package
// baseline commands whose only signal back to the core is success or
// failure.
package aptmgr

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner shells out to apt-get with a non-interactive frontend.
type Runner struct {
	logger *slog.Logger
	runCmd func(args ...string) error
}

// New creates a Runner.
func New(logger *slog.Logger) *Runner {
	r := &Runner{logger: logger.With("component", "aptmgr")}
	r.runCmd = r.aptGet
	return r
}

// Update refreshes the package index.
func (r *Runner) Update() error {
	r.logger.Info("refreshing package index")
	return r.runCmd("update")
}

// Upgrade applies all pending package upgrades.
func (r *Runner) Upgrade() error {
	r.logger.Info("applying package upgrades")
	return r.runCmd("-y", "dist-upgrade")
}

// Install installs the given packages.
func (r *Runner) Install(pkgs ...string) error {
	r.logger.Info("installing packages", "packages", strings.Join(pkgs, " "))
	return r.runCmd(append([]string{"-y", "install"}, pkgs...)...)
}

func (r *Runner) aptGet(args ...string) error {
	cmd := exec.Command("apt-get", args...)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("aptmgr: apt-get %s: %s: %w", args[0], strings.TrimSpace(string(output)), err)
	}
	return nil
}
