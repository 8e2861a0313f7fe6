// Package hostcheck implements the fatal preflight checks: elevated
// privileges and a supported package-manager family.
package hostcheck

import (
	"errors"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ErrNotRoot means the tool was invoked without root privileges.
var ErrNotRoot = errors.New("hostcheck: root privileges required, re-run with sudo")

// ErrUnsupportedHost means the host is not a Debian-family system.
var ErrUnsupportedHost = errors.New("hostcheck: apt-get not found, only Debian-family hosts are supported")

// RequireRoot returns ErrNotRoot unless the effective UID is 0.
func RequireRoot() error {
	if unix.Geteuid() != 0 {
		return ErrNotRoot
	}
	return nil
}

// RequireAptHost returns ErrUnsupportedHost unless apt-get is on PATH.
func RequireAptHost() error {
	if _, err := exec.LookPath("apt-get"); err != nil {
		return ErrUnsupportedHost
	}
	return nil
}
