package main

import "errors"

var (
	// ErrNoInstallFound means every install location was checked cleanly
	// and none of them holds a WebView2 version.
	ErrNoInstallFound = errors.New("no WebView2 installation found")

	// ErrUnsupportedPlatform means the (OS, architecture) pair has no
	// msedgedriver distribution.
	ErrUnsupportedPlatform = errors.New("platform not supported by msedgedriver")

	// ErrBodyTooLarge means a response body exceeded the fetcher's size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrNoMatchingEntry means the manifest holds no entry with the
	// expected archive name.
	ErrNoMatchingEntry = errors.New("no matching manifest entry")

	// ErrMemberNotFound means the downloaded archive holds no member with
	// the expected name.
	ErrMemberNotFound = errors.New("archive member not found")
)
