package scummvm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"scummvm-front/games"
)

const probeTimeout = 10 * time.Second

// ListTargets asks the scummvm executable for its configured targets. It is
// a secondary detection source for installs with a non-standard config
// location; entries merge into the catalog built from the config file.
func ListTargets(ctx context.Context, execPath string) ([]games.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, execPath, "--list-targets").Output()
	if err != nil {
		return nil, fmt.Errorf("scummvm --list-targets: %w", err)
	}
	return parseTargets(string(out)), nil
}

// parseTargets reads the --list-targets table: two header lines, then one
// "target  description" pair per line.
func parseTargets(out string) []games.Game {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) <= 2 {
		return nil
	}
	var targets []games.Game
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		targets = append(targets, games.Game{
			ID:        fields[0],
			Title:     strings.Join(fields[1:], " "),
			Installed: true,
		})
	}
	return targets
}

// Version probes the scummvm executable for its version string, for the
// status bar. An empty string with an error means no usable executable.
func Version(ctx context.Context, execPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, execPath, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("scummvm --version: %w", err)
	}
	return parseVersion(string(out)), nil
}

func parseVersion(out string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(line)
}
