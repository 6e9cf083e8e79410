package main

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
)

// resolution is the outcome of the version and locator stages.
type resolution struct {
	Version  string
	Platform Platform
	Target   DownloadTarget
}

type resolveOptions struct {
	// DriverVersion skips local version resolution entirely.
	DriverVersion string

	// PlatformLabel overrides platform detection.
	PlatformLabel string

	// Strategy overrides the configured locator strategy.
	Strategy string

	// ManifestSavePath makes the manifest strategy persist the raw
	// listing document for inspection.
	ManifestSavePath string

	Querier RegistryQuerier
	Client  *http.Client
}

// resolveTarget runs the version and locator stages of the pipeline:
// it determines the driver version to provision, the platform to
// provision it for, and the archive URL and member name to download.
func resolveTarget(ctx context.Context, cfg Config, opts resolveOptions) (resolution, error) {
	client := opts.Client
	if client == nil {
		client = newUserAgentClient(userAgent())
	}

	platform, err := resolvePlatform(cfg, opts)
	if err != nil {
		return resolution{}, err
	}

	version, err := resolveVersion(ctx, cfg, opts, client)
	if err != nil {
		return resolution{}, err
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = cfg.Driver.Strategy
	}

	var locator Locator
	switch strategy {
	case "", "direct":
		locator = newDirectLocator(cfg.Driver.DownloadURL)
	case "manifest":
		locator = manifestLocator{
			client:      client,
			manifestURL: cfg.Driver.ManifestURL,
			savePath:    opts.ManifestSavePath,
		}
	default:
		return resolution{}, fmt.Errorf("unknown locator strategy: %s", strategy)
	}

	target, err := locator.Locate(ctx, version, platform)
	if err != nil {
		return resolution{}, fmt.Errorf("locate driver archive: %w", err)
	}

	return resolution{
		Version:  version,
		Platform: platform,
		Target:   target,
	}, nil
}

func resolvePlatform(cfg Config, opts resolveOptions) (Platform, error) {
	label := opts.PlatformLabel
	if label == "" {
		label = cfg.Driver.Platform
	}
	if label != "" {
		return PlatformByLabel(label)
	}
	return CurrentPlatform()
}

func resolveVersion(ctx context.Context, cfg Config, opts resolveOptions, client *http.Client) (string, error) {
	if opts.DriverVersion != "" {
		return opts.DriverVersion, nil
	}

	// The registry holds the installed WebView2 version only on Windows.
	// Elsewhere fall back to the newest release the update API lists for
	// the configured channel.
	if runtime.GOOS != "windows" {
		versions, err := GetVersions(ctx, client, cfg.Updates.URL, productVersionsPath(cfg.Updates.Channel))
		if err != nil {
			return "", fmt.Errorf("list driver versions: %w", err)
		}
		version, err := FindLatestVersion(versions, "")
		if err != nil {
			return "", fmt.Errorf("list driver versions: %w", err)
		}
		return version, nil
	}

	querier := opts.Querier
	if querier == nil {
		querier = powershellQuerier{}
	}
	return ResolveInstalledVersion(ctx, querier)
}
