package cmd

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostops/basekeeper/internal/aptmgr"
	"github.com/hostops/basekeeper/internal/config"
	"github.com/hostops/basekeeper/internal/flow"
	"github.com/hostops/basekeeper/internal/hardening"
	"github.com/hostops/basekeeper/internal/hostcheck"
	"github.com/hostops/basekeeper/internal/inventory"
	"github.com/hostops/basekeeper/internal/ledger"
	"github.com/hostops/basekeeper/internal/lifecycle"
	"github.com/hostops/basekeeper/internal/logging"
	"github.com/hostops/basekeeper/internal/servicemgr"
)

func runRoot(cmd *cobra.Command, _ []string) error {
	// 1. Parse config, apply CLI flag overrides.
	cfg, err := config.Parse(cfgFile)
	if err != nil {
		return fmt.Errorf("basekeeper: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("ledger") {
		cfg.LedgerPath = ledgerPath
	}
	cfg.NonInteractive = cfg.NonInteractive || nonInteractive
	cfg.AutoConfirm = cfg.AutoConfirm || autoConfirm
	cfg.SkipHardening = cfg.SkipHardening || skipHardening
	cfg.SkipPHP = cfg.SkipPHP || skipPHP

	// 2. Set up the structured logger with its append-only file sink.
	logger, closeLog := logging.Setup(cfg.LogFile, cfg.LogLevel)
	defer closeLog()

	logger.Info("starting basekeeper",
		"version", buildVersion,
		"non_interactive", cfg.NonInteractive,
		"auto_confirm", cfg.AutoConfirm,
	)

	// 3. Fatal preflight: privileges, host family.
	if err := hostcheck.RequireRoot(); err != nil {
		logger.Error("preflight failed", "error", err)
		return err
	}
	if err := hostcheck.RequireAptHost(); err != nil {
		logger.Error("preflight failed", "error", err)
		return err
	}

	// 4. Package baseline. Failures are logged, the run continues.
	apt := aptmgr.New(logger)
	if err := apt.Update(); err != nil {
		logger.Warn("package index refresh failed", "error", err)
	}
	if err := apt.Upgrade(); err != nil {
		logger.Warn("package upgrade failed", "error", err)
	}

	svc := servicemgr.NewSystemctl()

	// 5. Security hardening.
	if cfg.SkipHardening {
		logger.Info("security hardening skipped")
	} else {
		hardening.New(apt, svc, logger).Apply()
	}

	// 6. PHP-FPM lifecycle.
	store := ledger.NewFileStore(cfg.LedgerPath)
	fl := flow.New(cfg, inventory.New(svc), store, lifecycle.NewExecutor(svc, store, logger),
		cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	switch {
	case cfg.SkipPHP:
		logger.Info("php-fpm management skipped")
	case cfg.NonInteractive:
		logger.Info("non-interactive mode, php-fpm management skipped")
	default:
		if err := store.Initialize(); err != nil {
			logger.Error("ledger initialization failed", "error", err)
		} else {
			if err := fl.RunDisable(); err != nil {
				logger.Error("disable flow aborted", "error", err)
			}
			if err := fl.RunReenable(); err != nil {
				logger.Error("re-enable flow aborted", "error", err)
			}
		}
	}

	// 7. Reboot prompt. Declining is normal completion.
	logger.Info("maintenance complete")
	if fl.Confirm("Reboot now? [y/N]: ") {
		logger.Info("rebooting host")
		if err := rebootHost(); err != nil {
			logger.Warn("reboot failed", "error", err)
		}
	}
	return nil
}

func rebootHost() error {
	output, err := exec.Command("systemctl", "reboot").CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl reboot: %s: %w", strings.TrimSpace(string(output)), err)
	}
	return nil
}
