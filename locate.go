package main

import (
	"context"
	"fmt"
)

// DownloadTarget is a resolved driver archive location plus the archive
// member to extract from it.
type DownloadTarget struct {
	URL    string
	Member string
}

// Locator turns a driver version and platform into a download target.
type Locator interface {
	Locate(ctx context.Context, version string, platform Platform) (DownloadTarget, error)
}

// directLocator renders the download URL from a template. It never
// touches the network.
type directLocator struct {
	urlTemplate string
}

func newDirectLocator(urlTemplate string) directLocator {
	if urlTemplate == "" {
		urlTemplate = defaultDownloadURL
	}
	return directLocator{urlTemplate: urlTemplate}
}

func (l directLocator) Locate(_ context.Context, version string, platform Platform) (DownloadTarget, error) {
	url, err := renderTemplate(l.urlTemplate, tplData{Version: version, Platform: platform.Label})
	if err != nil {
		return DownloadTarget{}, fmt.Errorf("render download url: %w", err)
	}
	return DownloadTarget{
		URL:    url,
		Member: platform.DriverFilename(),
	}, nil
}
