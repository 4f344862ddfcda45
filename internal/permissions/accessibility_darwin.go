//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>
*/
import "C"

type axProbe struct{}

func newProbe() Probe {
	return axProbe{}
}

// AccessibilityTrusted reports whether the user granted this app assistive
// access in System Settings. It never prompts; the wizard's permissions
// screen drives the grant flow.
func (axProbe) AccessibilityTrusted() bool {
	return C.AXIsProcessTrusted() != 0
}
