package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cluttrdev/cli"
)

func newResolveCmd() *cli.Command {
	cfg := resolveCmd{}

	fs := flag.NewFlagSet("fetchdriver resolve", flag.ExitOnError)

	cfg.RegisterFlags(fs)

	return &cli.Command{
		Name:       "resolve",
		ShortHelp:  "Resolve the download target without downloading anything.",
		ShortUsage: "fetchdriver resolve [OPTION]...",
		Flags:      fs,
		Exec:       cfg.Exec,
	}
}

type resolveCmd struct {
	rootCmd

	driverVersion string
	platformLabel string
	strategy      string
}

func (c *resolveCmd) RegisterFlags(fs *flag.FlagSet) {
	c.rootCmd.RegisterFlags(fs)

	fs.StringVar(&c.driverVersion, "driver-version", "", "Use this driver version instead of resolving the installed one.")
	fs.StringVar(&c.platformLabel, "platform", "", "Override the detected platform label (e.g. 'win64').")
	fs.StringVar(&c.strategy, "strategy", "", "The locator strategy ('direct' or 'manifest').")
}

func (c *resolveCmd) Exec(ctx context.Context, args []string) (err error) {
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

	res, err := resolveTarget(ctx, cfg, resolveOptions{
		DriverVersion: c.driverVersion,
		PlatformLabel: c.platformLabel,
		Strategy:      c.strategy,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "version:  %s\n", res.Version)
	fmt.Fprintf(os.Stdout, "platform: %s\n", res.Platform)
	fmt.Fprintf(os.Stdout, "url:      %s\n", res.Target.URL)
	fmt.Fprintf(os.Stdout, "member:   %s\n", res.Target.Member)

	return nil
}
