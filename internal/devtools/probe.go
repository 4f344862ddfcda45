// Package devtools detects the optional developer tools the wizard reports on.
package devtools

import (
	"context"
	"os/exec"
	"strings"

	"macbot/internal/onboarding"
)

// Prober shells out to the tools it probes. The command hooks exist so tests
// can run without the real binaries on PATH.
type Prober struct {
	lookPath func(name string) (string, error)
	output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewProber() *Prober {
	return &Prober{
		lookPath: exec.LookPath,
		output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Check probes Homebrew, Python, Node and npx. A missing tool is data the
// wizard displays, never an error.
func (p *Prober) Check(ctx context.Context) onboarding.DevToolsData {
	return onboarding.DevToolsData{
		Homebrew: p.tool(ctx, "brew"),
		Python:   p.tool(ctx, "python3"),
		Node:     p.tool(ctx, "node"),
		Npx:      onboarding.NpxInfo{Installed: p.found("npx")},
	}
}

func (p *Prober) found(name string) bool {
	_, err := p.lookPath(name)
	return err == nil
}

func (p *Prober) tool(ctx context.Context, name string) onboarding.DevToolInfo {
	if !p.found(name) {
		return onboarding.DevToolInfo{}
	}

	out, err := p.output(ctx, name, "--version")
	if err != nil {
		// Present but not answering --version; still report it installed.
		return onboarding.DevToolInfo{Installed: true}
	}
	return onboarding.DevToolInfo{Installed: true, Version: firstLine(string(out))}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
