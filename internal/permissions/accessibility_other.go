//go:build !darwin

package permissions

type trustedProbe struct{}

func newProbe() Probe {
	return trustedProbe{}
}

// AccessibilityTrusted is vacuously true here: no accessibility-trust model
// exists outside macOS.
func (trustedProbe) AccessibilityTrusted() bool {
	return true
}
