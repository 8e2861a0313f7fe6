package servicemgr

import (
	"fmt"
	"os/exec"
	"strings"
)

// systemctlManager implements Manager using os/exec to call systemctl.
type systemctlManager struct{}

// NewSystemctl returns a Manager that calls the real systemctl binary.
func NewSystemctl() Manager {
	return &systemctlManager{}
}

// IsAvailable reports whether systemctl is present on this host.
func IsAvailable() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}

func (m *systemctlManager) ListUnits(glob string) ([]string, error) {
	cmd := exec.Command("systemctl", "list-unit-files", "--type=service", "--no-legend", "--plain", glob+".service")
	output, err := cmd.Output()
	// systemctl exits non-zero when no unit files match the glob; an empty
	// listing is a valid result, not a failure.
	if err != nil && len(strings.TrimSpace(string(output))) == 0 {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("servicemgr: systemctl list-unit-files %s: %w", glob, err)
	}

	var units []string
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		units = append(units, strings.TrimSuffix(fields[0], ".service"))
	}
	return units, nil
}

func (m *systemctlManager) Exists(name string) bool {
	units, err := m.ListUnits(name)
	if err != nil {
		return false
	}
	for _, u := range units {
		if u == name {
			return true
		}
	}
	return false
}

func (m *systemctlManager) Stop(name string) error {
	return m.run("stop", name)
}

func (m *systemctlManager) Disable(name string) error {
	return m.run("disable", name)
}

func (m *systemctlManager) Enable(name string) error {
	return m.run("enable", name)
}

func (m *systemctlManager) Start(name string) error {
	return m.run("start", name)
}

func (m *systemctlManager) run(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("servicemgr: systemctl %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(output)), err)
	}
	return nil
}
