// Package cmd implements the basekeeper CLI.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostops/basekeeper/internal/config"
)

var (
	cfgFile        string
	logLevel       string
	ledgerPath     string
	nonInteractive bool
	autoConfirm    bool
	skipHardening  bool
	skipPHP        bool
)

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("basekeeper version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

var rootCmd = &cobra.Command{
	Use:   "basekeeper",
	Short: "basekeeper maintains a host's package baseline and PHP-FPM service set",
	Long: "basekeeper brings a Debian-family host up to its maintained baseline:\n" +
		"it refreshes and upgrades packages, installs the security hardening set\n" +
		"(unattended-upgrades, UFW, fail2ban), and manages the PHP-FPM service\n" +
		"lifecycle under a guardrail that never leaves the host without an\n" +
		"enabled PHP-FPM service. Disabled services are recorded in a durable\n" +
		"ledger so they can be re-enabled later.",
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&ledgerPath, "ledger", config.DefaultLedgerPath, "disabled-set ledger file path")
	rootCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "suppress prompts, use safe defaults and skip the PHP-FPM flows")
	rootCmd.Flags().BoolVarP(&autoConfirm, "yes", "y", false, "answer yes to every prompt (dangerous; never bypasses the guardrail)")
	rootCmd.Flags().BoolVar(&skipHardening, "skip-hardening", false, "skip the security hardening step")
	rootCmd.Flags().BoolVar(&skipPHP, "skip-php", false, "skip PHP-FPM service management")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("basekeeper version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
