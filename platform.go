package main

import (
	"fmt"
	"runtime"
)

// Platform is how Microsoft labels an (OS, architecture) pair in
// msedgedriver download URLs.
type Platform struct {
	Label   string
	windows bool
}

func (p Platform) String() string {
	return p.Label
}

// DriverFilename returns the name of the driver executable inside the
// archives published for this platform.
func (p Platform) DriverFilename() string {
	if p.windows {
		return "msedgedriver.exe"
	}
	return "msedgedriver"
}

// CurrentPlatform resolves the platform of the running process.
func CurrentPlatform() (Platform, error) {
	return PlatformFor(runtime.GOOS, runtime.GOARCH)
}

// PlatformFor maps a GOOS/GOARCH pair onto the vendor's platform label.
func PlatformFor(goos string, goarch string) (Platform, error) {
	switch goos + "/" + goarch {
	case "windows/amd64":
		return Platform{Label: "win64", windows: true}, nil
	case "windows/arm64":
		return Platform{Label: "arm64", windows: true}, nil
	case "windows/386":
		return Platform{Label: "win32", windows: true}, nil
	case "darwin/amd64":
		return Platform{Label: "mac64"}, nil
	case "darwin/arm64":
		return Platform{Label: "mac64_m1"}, nil
	case "linux/amd64":
		return Platform{Label: "linux64"}, nil
	}
	return Platform{}, fmt.Errorf("%s(%s): %w", goos, goarch, ErrUnsupportedPlatform)
}

// PlatformByLabel resolves a label given explicitly via flag or config.
func PlatformByLabel(label string) (Platform, error) {
	switch label {
	case "win64", "win32", "arm64":
		return Platform{Label: label, windows: true}, nil
	case "mac64", "mac64_m1", "linux64":
		return Platform{Label: label}, nil
	}
	return Platform{}, fmt.Errorf("%s: %w", label, ErrUnsupportedPlatform)
}
