// Package permissions answers OS permission queries for the current process.
package permissions

// Probe reports whether the OS trusts this process for assistive access.
// Only macOS has the concept; on other platforms the probe compiled in
// always reports true.
type Probe interface {
	AccessibilityTrusted() bool
}

// New returns the probe for the platform this binary was built for.
func New() Probe {
	return newProbe()
}
