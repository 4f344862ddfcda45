package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// All MacBot files live in a single directory under the user's home.
const dirName = ".macbot"

// ErrHomeDirUnavailable is returned when the user's home directory cannot be
// resolved. Every file operation fails with it in that situation.
var ErrHomeDirUnavailable = errors.New("home directory unavailable")

// Dir returns the MacBot data directory. It does not create it; writers are
// responsible for that.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeDirUnavailable, err)
	}
	return filepath.Join(home, dirName), nil
}

// OnboardingFile returns the path of the persisted wizard state.
func OnboardingFile() (string, error) {
	return inDir("onboarding.json")
}

// EnvFile returns the path of the service configuration file.
func EnvFile() (string, error) {
	return inDir(".env")
}

// PIDFile returns the path of the background service's pid record.
func PIDFile() (string, error) {
	return inDir("service.pid")
}

func inDir(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
