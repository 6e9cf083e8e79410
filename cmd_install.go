package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cluttrdev/cli"
	"github.com/pterm/pterm"

	"go.edgekit.dev/fetchdriver/internal/metaerr"
)

const manifestSaveName = "msedgedriver-manifest.xml"

func newInstallCmd() *cli.Command {
	cfg := installCmd{}

	fs := flag.NewFlagSet("fetchdriver install", flag.ExitOnError)

	cfg.RegisterFlags(fs)

	return &cli.Command{
		Name:       "install",
		ShortHelp:  "Download and extract the matching msedgedriver binary.",
		ShortUsage: "fetchdriver install [OPTION]...",
		Flags:      fs,
		Exec:       cfg.Exec,
	}
}

type installCmd struct {
	rootCmd

	driverVersion string
	platformLabel string
	strategy      string
	outputDir     string
	keepManifest  bool
}

func (c *installCmd) RegisterFlags(fs *flag.FlagSet) {
	c.rootCmd.RegisterFlags(fs)

	fs.StringVar(&c.driverVersion, "driver-version", "", "Use this driver version instead of resolving the installed one.")
	fs.StringVar(&c.platformLabel, "platform", "", "Override the detected platform label (e.g. 'win64').")
	fs.StringVar(&c.strategy, "strategy", "", "The locator strategy ('direct' or 'manifest').")
	fs.StringVar(&c.outputDir, "output", "", "The directory to extract the driver into.")
	fs.BoolVar(&c.keepManifest, "keep-manifest", false, "Write the fetched manifest to "+manifestSaveName+".")
}

func (c *installCmd) Exec(ctx context.Context, args []string) (err error) {
	c.initLogging()

	defer func() {
		if err != nil && c.logFile != os.Stderr {
			err = fmt.Errorf("%w\nSee %s for details", err, c.logFile.Name())
		}
	}()

	cfg := defaultConfig()
	if err := LoadConfigFile(c.ConfigFile, &cfg); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	outputDir := c.outputDir
	if outputDir == "" {
		outputDir = cfg.Global.OutputDir
	}
	if outputDir == "" {
		outputDir = "."
	}

	opts := resolveOptions{
		DriverVersion: c.driverVersion,
		PlatformLabel: c.platformLabel,
		Strategy:      c.strategy,
	}
	if c.keepManifest {
		opts.ManifestSavePath = filepath.Join(outputDir, manifestSaveName)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Resolving driver version")
	res, err := resolveTarget(ctx, cfg, opts)
	if err != nil {
		slog.With("error", err).
			With(metaerr.GetMetadata(err)...).
			Error("failed to resolve download target")
		spinner.Fail()
		return err
	}
	spinner.Success("Resolved driver ", res.Version, " (", res.Platform.Label, ")")

	spinner, _ = pterm.DefaultSpinner.Start("Downloading ", res.Target.URL)
	fetcher := newHTTPFetcher(opts.Client)
	archive, err := fetcher.Fetch(ctx, res.Target.URL)
	if err != nil {
		slog.With("error", err).
			With(metaerr.GetMetadata(err)...).
			Error("failed to download driver archive")
		spinner.Fail()
		return fmt.Errorf("download driver archive: %w", err)
	}
	spinner.Success()

	dst := filepath.Join(outputDir, res.Target.Member)
	spinner, _ = pterm.DefaultSpinner.Start("Extracting ", res.Target.Member)
	if err := extractMember(archive, res.Target.Member, dst); err != nil {
		slog.With("error", err).
			With(metaerr.GetMetadata(err)...).
			Error("failed to extract driver binary")
		spinner.Fail()
		return fmt.Errorf("extract driver binary: %w", err)
	}
	spinner.Success("Installed ", dst)

	return nil
}
