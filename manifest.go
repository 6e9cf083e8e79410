package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"go.edgekit.dev/fetchdriver/internal/metaerr"
)

// manifestEntry is one archive listed by the vendor's blob manifest.
type manifestEntry struct {
	Name string `xml:"Name"`
	URL  string `xml:"Url"`
}

type manifest struct {
	Blobs []manifestEntry `xml:"Blobs>Blob"`
}

// manifestLocator fetches the vendor's blob listing and scans it for the
// archive matching the requested version. The listing names only win64
// archives predictably, so this strategy is a win64 fallback for when the
// direct download host does not serve the templated path.
type manifestLocator struct {
	client      *http.Client
	manifestURL string

	// savePath, if non-empty, is where the raw manifest document is
	// written for inspection. Never read back.
	savePath string
}

func (l manifestLocator) Locate(ctx context.Context, version string, platform Platform) (DownloadTarget, error) {
	if platform.Label != "win64" {
		return DownloadTarget{}, fmt.Errorf("manifest strategy only lists win64 archives, got %s", platform.Label)
	}

	doc, err := l.fetchManifest(ctx)
	if err != nil {
		return DownloadTarget{}, err
	}

	var m manifest
	if err := xml.Unmarshal(doc, &m); err != nil {
		return DownloadTarget{}, fmt.Errorf("parse manifest: %w", err)
	}

	want := fmt.Sprintf("%s/edgedriver_win64.zip", version)
	for _, entry := range m.Blobs {
		if entry.Name == want {
			return DownloadTarget{URL: entry.URL, Member: "msedgedriver.exe"}, nil
		}
	}

	return DownloadTarget{}, metaerr.WithMetadata(ErrNoMatchingEntry, "name", want)
}

func (l manifestLocator) fetchManifest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.manifestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, metaerr.WithMetadata(
			fmt.Errorf("fetch manifest: %d - %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			"url", l.manifestURL,
		)
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	if l.savePath != "" {
		if err := os.WriteFile(l.savePath, doc, 0644); err != nil {
			slog.Warn("failed to save manifest", "path", l.savePath, "error", err)
		}
	}

	return doc, nil
}
