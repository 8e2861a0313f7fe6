// Package hardening installs and activates the host's baseline security
// packages: unattended-upgrades, UFW and fail2ban. Every step is
// best-effort; failures are logged and the remaining steps still run.
package hardening

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/hostops/basekeeper/internal/servicemgr"
)

// PackageInstaller abstracts package installation for testability.
// Satisfied by aptmgr.Runner.
type PackageInstaller interface {
	Install(pkgs ...string) error
}

// Hardener applies the security baseline.
type Hardener struct {
	pkgs   PackageInstaller
	svc    servicemgr.Manager
	logger *slog.Logger
	runCmd func(name string, args ...string) error
}

// New creates a Hardener over the given package installer and service manager.
func New(pkgs PackageInstaller, svc servicemgr.Manager, logger *slog.Logger) *Hardener {
	return &Hardener{
		pkgs:   pkgs,
		svc:    svc,
		logger: logger.With("component", "hardening"),
		runCmd: runCommand,
	}
}

// Apply installs unattended-upgrades, UFW and fail2ban, configures the
// firewall baseline (deny incoming, allow outgoing, allow OpenSSH) and
// activates the services. Never fatal to the run.
func (h *Hardener) Apply() {
	if err := h.pkgs.Install("unattended-upgrades", "ufw", "fail2ban"); err != nil {
		h.logger.Warn("package installation failed", "error", err)
	}

	h.enableService("unattended-upgrades")
	h.configureFirewall()
	h.enableService("fail2ban")
	h.startService("fail2ban")
}

func (h *Hardener) configureFirewall() {
	steps := [][]string{
		{"ufw", "default", "deny", "incoming"},
		{"ufw", "default", "allow", "outgoing"},
		{"ufw", "allow", "OpenSSH"},
		{"ufw", "--force", "enable"},
	}
	for _, step := range steps {
		if err := h.runCmd(step[0], step[1:]...); err != nil {
			h.logger.Warn("firewall step failed", "step", strings.Join(step, " "), "error", err)
			continue
		}
		h.logger.Info("firewall step applied", "step", strings.Join(step, " "))
	}
}

func (h *Hardener) enableService(name string) {
	if err := h.svc.Enable(name); err != nil {
		h.logger.Warn("service enable failed", "service", name, "error", err)
		return
	}
	h.logger.Info("service enabled", "service", name)
}

func (h *Hardener) startService(name string) {
	if err := h.svc.Start(name); err != nil {
		h.logger.Warn("service start failed", "service", name, "error", err)
		return
	}
	h.logger.Info("service started", "service", name)
}

func runCommand(name string, args ...string) error {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("hardening: %s %s: %s: %w", name, strings.Join(args, " "), strings.TrimSpace(string(output)), err)
	}
	return nil
}
