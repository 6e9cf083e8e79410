package main

import (
	"context"
	"testing"
)

func TestDirectLocate(t *testing.T) {
	tests := []struct {
		testName string // description of this test case
		// Named input parameters for target function.
		urlTemplate string
		version     string
		platform    string
		wantURL     string
		wantMember  string
		wantErr     bool
	}{
		{
			testName:   "win64 default template",
			version:    "100.0.1.2",
			platform:   "win64",
			wantURL:    "https://msedgedriver.microsoft.com/100.0.1.2/edgedriver_win64.zip",
			wantMember: "msedgedriver.exe",
		},
		{
			testName:   "linux64 default template",
			version:    "120.0.2210.91",
			platform:   "linux64",
			wantURL:    "https://msedgedriver.microsoft.com/120.0.2210.91/edgedriver_linux64.zip",
			wantMember: "msedgedriver",
		},
		{
			testName:    "custom template",
			urlTemplate: "https://mirror.example.com/edgedriver/{{ .Platform }}/{{ .Version }}.zip",
			version:     "100.0.1.2",
			platform:    "mac64_m1",
			wantURL:     "https://mirror.example.com/edgedriver/mac64_m1/100.0.1.2.zip",
			wantMember:  "msedgedriver",
		},
		{
			testName:    "broken template",
			urlTemplate: "https://mirror.example.com/{{ .Version",
			version:     "100.0.1.2",
			platform:    "win64",
			wantErr:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			platform, err := PlatformByLabel(tt.platform)
			if err != nil {
				t.Fatalf("PlatformByLabel() failed: %v", err)
			}
			locator := newDirectLocator(tt.urlTemplate)
			got, gotErr := locator.Locate(context.Background(), tt.version, platform)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("Locate() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Locate() succeeded unexpectedly")
			}
			if got.URL != tt.wantURL {
				t.Errorf("Locate() url = %v, want %v", got.URL, tt.wantURL)
			}
			if got.Member != tt.wantMember {
				t.Errorf("Locate() member = %v, want %v", got.Member, tt.wantMember)
			}
		})
	}
}

func TestDirectLocateDeterministic(t *testing.T) {
	platform, _ := PlatformByLabel("win64")
	locator := newDirectLocator("")
	first, err := locator.Locate(context.Background(), "100.0.1.2", platform)
	if err != nil {
		t.Fatalf("Locate() failed: %v", err)
	}
	second, err := locator.Locate(context.Background(), "100.0.1.2", platform)
	if err != nil {
		t.Fatalf("Locate() failed: %v", err)
	}
	if first != second {
		t.Errorf("Locate() not deterministic: %v != %v", first, second)
	}
}
