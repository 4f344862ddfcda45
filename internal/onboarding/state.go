// Package onboarding persists the setup wizard's progress document.
package onboarding

// State is the root document written to onboarding.json. It is read and
// written wholesale; the frontend owns all mutation between the two.
type State struct {
	// Version is reserved for future schema migrations. It is written as 1
	// and never branched on today.
	Version     int    `json:"version"`
	Completed   bool   `json:"completed"`
	CurrentStep string `json:"current_step"`
	Data        Data   `json:"data"`
}

// Data holds the facts the wizard collects across its screens.
type Data struct {
	Permissions PermissionsData `json:"permissions"`
	APIKey      APIKeyData      `json:"api_key"`
	Telegram    TelegramData    `json:"telegram"`
	DevTools    DevToolsData    `json:"dev_tools"`
}

// PermissionsData tracks which macOS permissions the user has granted.
type PermissionsData struct {
	Accessibility bool `json:"accessibility"`
	// Automation maps an app name (Mail, Calendar, ...) to whether the user
	// granted MacBot automation access to it.
	Automation map[string]bool `json:"automation"`
}

// APIKeyData records the provider credential step.
type APIKeyData struct {
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
	Verified   bool   `json:"verified"`
}

// TelegramData records the optional Telegram bot step.
type TelegramData struct {
	Configured bool `json:"configured"`
	Skipped    bool `json:"skipped"`
}

// DevToolInfo describes one detected developer tool.
type DevToolInfo struct {
	Installed bool   `json:"installed"`
	Version   string `json:"version"`
}

// NpxInfo carries no version; npx ships with node and only presence matters.
type NpxInfo struct {
	Installed bool `json:"installed"`
}

// DevToolsData records the developer-tools detection step. Its zero value is
// the documented default, so state files written before the step existed
// decode without it and still read back correctly.
type DevToolsData struct {
	Homebrew DevToolInfo `json:"homebrew"`
	Python   DevToolInfo `json:"python"`
	Node     DevToolInfo `json:"node"`
	Npx      NpxInfo     `json:"npx"`
	Skipped  bool        `json:"skipped"`
}

// automationApps are the apps the permissions screen asks about.
var automationApps = []string{"Mail", "Calendar", "Reminders", "Notes", "Safari"}

// DefaultState returns the document for a fresh install: wizard at the
// welcome screen, nothing granted, nothing configured.
func DefaultState() State {
	automation := make(map[string]bool, len(automationApps))
	for _, app := range automationApps {
		automation[app] = false
	}

	return State{
		Version:     1,
		Completed:   false,
		CurrentStep: "welcome",
		Data: Data{
			Permissions: PermissionsData{
				Accessibility: false,
				Automation:    automation,
			},
			APIKey: APIKeyData{
				Provider:   "openai",
				Configured: false,
				Verified:   false,
			},
			Telegram: TelegramData{
				Configured: false,
				Skipped:    false,
			},
			DevTools: DevToolsData{},
		},
	}
}
