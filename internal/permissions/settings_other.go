//go:build !darwin

package permissions

// OpenSettingsPane is a no-op outside macOS; there is no pane to show.
func OpenSettingsPane(pane string) error {
	return nil
}
