//go:build darwin

package permissions

import (
	"fmt"
	"os/exec"
)

// OpenSettingsPane opens System Settings at the given pane, e.g.
// "com.apple.preference.security?Privacy_Accessibility". The pane is where
// the user grants what the wizard asks for; launch is fire-and-forget.
func OpenSettingsPane(pane string) error {
	cmd := exec.Command("open", "x-apple.systempreferences:"+pane)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open system settings: %w", err)
	}
	go cmd.Wait()
	return nil
}
