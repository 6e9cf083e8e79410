package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

const edgeUpdateClientKey = `Microsoft\EdgeUpdate\Clients\{F3017226-FE2A-4295-8BDF-00C3A9A7E4C5}`

// installLocation is one candidate registry location of a WebView2
// installation.
type installLocation struct {
	label string
	key   string
}

// installLocations are checked in preference order; the first location
// that yields a version wins.
var installLocations = []installLocation{
	{label: "machine-wide 64-bit", key: `HKLM:\SOFTWARE\WOW6432Node\` + edgeUpdateClientKey},
	{label: "machine-wide 32-bit", key: `HKLM:\SOFTWARE\` + edgeUpdateClientKey},
	{label: "user-wide 64-bit", key: `HKCU:\SOFTWARE\WOW6432Node\` + edgeUpdateClientKey},
	{label: "user-wide 32-bit", key: `HKCU:\SOFTWARE\` + edgeUpdateClientKey},
}

// RegistryQuerier looks up the product version stored at a registry key.
// ok is false when the query ran cleanly but the key holds no value; a
// non-nil error means the lookup mechanism itself could not be used.
type RegistryQuerier interface {
	QueryVersion(ctx context.Context, key string) (version string, ok bool, err error)
}

// powershellQuerier reads registry values through PowerShell's
// Get-ItemProperty. A non-zero exit status signals "key not present",
// not a mechanism failure.
type powershellQuerier struct{}

func (powershellQuerier) QueryVersion(ctx context.Context, key string) (string, bool, error) {
	script := fmt.Sprintf("Get-ItemProperty -Path '%s' | ForEach-Object {$_.pv}", key)
	out, err := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", script).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("run powershell: %w", err)
	}

	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", false, nil
	}
	return version, true, nil
}

// ResolveInstalledVersion checks the known install locations in order and
// returns the version of the first WebView2 installation it finds.
// Mechanism errors do not abort the scan; they are reported only if no
// later location yields a version, so a broken HKLM hive cannot mask a
// per-user installation.
func ResolveInstalledVersion(ctx context.Context, querier RegistryQuerier) (string, error) {
	var errs []error
	for _, loc := range installLocations {
		version, ok, err := querier.QueryVersion(ctx, loc.key)
		if err != nil {
			slog.Debug("webview2 lookup failed", "location", loc.label, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", loc.label, err))
			continue
		}
		if ok {
			slog.Debug("found WebView2 installation", "location", loc.label, "version", version)
			return version, nil
		}
	}

	if len(errs) > 0 {
		return "", fmt.Errorf("look up WebView2 version: %w", errors.Join(errs...))
	}
	return "", ErrNoInstallFound
}
