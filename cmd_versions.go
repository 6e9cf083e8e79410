package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cluttrdev/cli"
)

func newVersionsCmd() *cli.Command {
	cfg := versionsCmd{}

	fs := flag.NewFlagSet("fetchdriver versions", flag.ExitOnError)

	cfg.RegisterFlags(fs)

	return &cli.Command{
		Name:       "versions",
		ShortHelp:  "List driver versions published by the Edge update API.",
		ShortUsage: "fetchdriver versions [OPTION]...",
		Flags:      fs,
		Exec:       cfg.Exec,
	}
}

type versionsCmd struct {
	rootCmd

	channel    string
	constraint string
	limit      int
}

func (c *versionsCmd) RegisterFlags(fs *flag.FlagSet) {
	c.rootCmd.RegisterFlags(fs)

	fs.StringVar(&c.channel, "channel", "", "The release channel (e.g. 'Stable', 'Beta').")
	fs.StringVar(&c.constraint, "constraint", "", "Only list versions matching this constraint (e.g. '>=120').")
	fs.IntVar(&c.limit, "limit", 0, "List at most this many versions (0 for all).")
}

func (c *versionsCmd) Exec(ctx context.Context, args []string) (err error) {
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

	channel := c.channel
	if channel == "" {
		channel = cfg.Updates.Channel
	}

	client := newUserAgentClient(userAgent())
	versions, err := GetVersions(ctx, client, cfg.Updates.URL, productVersionsPath(channel))
	if err != nil {
		return fmt.Errorf("list driver versions: %w", err)
	}

	if c.constraint != "" {
		versions, err = FilterVersions(versions, c.constraint)
		if err != nil {
			return fmt.Errorf("filter driver versions: %w", err)
		}
	}

	sorted := SortVersions(versions)
	if c.limit > 0 && len(sorted) > c.limit {
		sorted = sorted[:c.limit]
	}

	for _, version := range sorted {
		fmt.Fprintln(os.Stdout, version)
	}

	return nil
}
