package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/AsaiYusuke/jsonpath"
	"github.com/Masterminds/semver/v3"

	"go.edgekit.dev/fetchdriver/internal/metaerr"
)

// productVersionsPath selects the published versions of one Edge release
// channel from the update API's products document.
func productVersionsPath(channel string) string {
	return fmt.Sprintf("$[?(@.Product == '%s')].Releases[*].ProductVersion", channel)
}

// GetVersions queries the `url` and filters the response using the
// JSONPath `path` to get a list of versions.
func GetVersions(ctx context.Context, client *http.Client, url string, path string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, metaerr.WithMetadata(
			fmt.Errorf("%d - %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			"body", string(body),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var src any
	if err := json.Unmarshal(body, &src); err != nil {
		return nil, fmt.Errorf("unmarshal response body: %w", err)
	}

	return retrieveVersions(src, path)
}

// FindLatestVersion returns the latest version from the list of
// `versions` that matches the given constraints `spec`.
func FindLatestVersion(versions []string, spec string) (string, error) {
	if spec == "" || spec == "latest" {
		spec = "*"
	}
	constraints, err := semver.NewConstraint(spec)
	if err != nil {
		return "", err
	}

	type candidate struct {
		original string
		coerced  *semver.Version
	}

	var cs []candidate
	for _, raw := range versions {
		v, err := coerceVersion(raw)
		if err != nil {
			continue
		}
		if !constraints.Check(v) {
			continue
		}
		cs = append(cs, candidate{original: raw, coerced: v})
	}
	if len(cs) == 0 {
		return "", fmt.Errorf("no matching versions: %v", spec)
	}

	sort.SliceStable(cs, func(i, j int) bool {
		return cs[j].coerced.LessThan(cs[i].coerced)
	})
	return cs[0].original, nil
}

// FilterVersions returns the versions that match the constraint `spec`.
func FilterVersions(versions []string, spec string) ([]string, error) {
	constraints, err := semver.NewConstraint(spec)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, raw := range versions {
		v, err := coerceVersion(raw)
		if err != nil {
			continue
		}
		if constraints.Check(v) {
			matched = append(matched, raw)
		}
	}
	return matched, nil
}

// SortVersions returns the versions deduplicated and ordered newest
// first. Entries that cannot be parsed are dropped.
func SortVersions(versions []string) []string {
	type candidate struct {
		original string
		coerced  *semver.Version
	}

	seen := make(map[string]struct{})
	var cs []candidate
	for _, raw := range versions {
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}
		v, err := coerceVersion(raw)
		if err != nil {
			continue
		}
		cs = append(cs, candidate{original: raw, coerced: v})
	}

	sort.SliceStable(cs, func(i, j int) bool {
		return cs[j].coerced.LessThan(cs[i].coerced)
	})

	sorted := make([]string, 0, len(cs))
	for _, c := range cs {
		sorted = append(sorted, c.original)
	}
	return sorted
}

// coerceVersion maps a four-part Edge version MAJOR.MINOR.BUILD.PATCH
// onto a comparable semver value. The MINOR component is always zero in
// practice, so MAJOR.BUILD.PATCH preserves ordering.
func coerceVersion(raw string) (*semver.Version, error) {
	parts := strings.Split(raw, ".")
	if len(parts) == 4 {
		raw = strings.Join([]string{parts[0], parts[2], parts[3]}, ".")
	}
	return semver.NewVersion(raw)
}

func retrieveVersions(src any, path string) ([]string, error) {
	config := jsonpath.Config{}
	config.SetAccessorMode()

	results, err := jsonpath.Retrieve(path, src, config)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, result := range results {
		version, _ := result.(jsonpath.Accessor).Get().(string)
		if version == "" {
			continue
		}
		versions = append(versions, version)
	}

	return versions, nil
}
