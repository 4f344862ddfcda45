package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"macbot/internal/apikey"
	"macbot/internal/devtools"
	"macbot/internal/envfile"
	"macbot/internal/lifecycle"
	"macbot/internal/onboarding"
	"macbot/internal/permissions"
)

// App is the Wails-bound backend of the setup wizard.
type App struct {
	ctx       context.Context
	state     *onboarding.Store
	config    *envfile.Store
	lifecycle *lifecycle.Controller
	probe     permissions.Probe
	devtools  *devtools.Prober
	verifier  *apikey.Verifier
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{
		state:     onboarding.NewStore(),
		config:    envfile.NewStore(),
		lifecycle: lifecycle.NewController(),
		probe:     permissions.New(),
		devtools:  devtools.NewProber(),
		verifier:  apikey.NewVerifier(),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is the app's single exit hook. Wails calls it exactly once; it
// stops the background service so no orphan outlives the app.
func (a *App) shutdown(ctx context.Context) {
	a.lifecycle.StopService()
	runtime.LogInfo(ctx, "service cleanup complete")
}

// ReadOnboardingState returns the persisted wizard progress, or the default
// document on first run.
func (a *App) ReadOnboardingState() (onboarding.State, error) {
	state, err := a.state.Read()
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to read onboarding state: %v", err))
		return onboarding.State{}, err
	}
	return state, nil
}

// WriteOnboardingState persists the wizard progress wholesale.
func (a *App) WriteOnboardingState(state onboarding.State) error {
	if err := a.state.Write(state); err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to write onboarding state: %v", err))
		return err
	}
	return nil
}

// ReadConfig returns the service .env content, empty when none exists yet.
func (a *App) ReadConfig() (string, error) {
	return a.config.Read()
}

// WriteConfig overwrites the service .env with exactly the given content.
func (a *App) WriteConfig(content string) error {
	if err := a.config.Write(content); err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to write config: %v", err))
		return err
	}
	return nil
}

// ConfigValues returns the service config as parsed key/value pairs.
func (a *App) ConfigValues() (map[string]string, error) {
	return a.config.Values()
}

// SetConfigValues merges the given pairs into the service config, keeping
// unrelated keys intact.
func (a *App) SetConfigValues(values map[string]string) error {
	if err := a.config.SetValues(values); err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to update config: %v", err))
		return err
	}
	return nil
}

// CheckAccessibilityPermission reports whether the OS trusts this app for
// assistive access.
func (a *App) CheckAccessibilityPermission() bool {
	return a.probe.AccessibilityTrusted()
}

// OpenSystemSettings opens the OS settings pane where the user grants a
// permission the wizard asked for.
func (a *App) OpenSystemSettings(pane string) error {
	return permissions.OpenSettingsPane(pane)
}

// CheckDevTools probes for Homebrew, Python, Node and npx.
func (a *App) CheckDevTools() onboarding.DevToolsData {
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.devtools.Check(ctx)
}

// VerifyAPIKey checks the key against the provider. False with a nil error
// means the provider rejected the key.
func (a *App) VerifyAPIKey(key string) (bool, error) {
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ok, err := a.verifier.Verify(ctx, key)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("api key verification failed: %v", err))
		return false, err
	}
	return ok, nil
}

// IsServiceRunning reports whether the background service's recorded pid is
// alive.
func (a *App) IsServiceRunning() bool {
	return a.lifecycle.ServiceRunning()
}
