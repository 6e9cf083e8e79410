package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/goccy/go-yaml"
)

const (
	defaultDownloadURL = "https://msedgedriver.microsoft.com/{{ .Version }}/edgedriver_{{ .Platform }}.zip"
	defaultManifestURL = "https://msedgedriver.azureedge.net"
	defaultUpdatesURL  = "https://edgeupdates.microsoft.com/api/products"
	defaultChannel     = "Stable"
)

// Config holds all application configuration settings.
type Config struct {
	Global  Global      `yaml:"global"`
	Driver  DriverSpec  `yaml:"driver"`
	Updates UpdatesSpec `yaml:"updates"`
}

// Global holds settings that apply to every command.
type Global struct {
	OutputDir string `yaml:"outputDir"`
}

// DriverSpec holds the settings of the download target resolution.
type DriverSpec struct {
	DownloadURL string `yaml:"downloadUrl"`
	ManifestURL string `yaml:"manifestUrl"`
	Strategy    string `yaml:"strategy"`
	Platform    string `yaml:"platform"`
}

// UpdatesSpec holds the settings of the Edge update API used to list
// published driver versions.
type UpdatesSpec struct {
	URL     string `yaml:"url"`
	Channel string `yaml:"channel"`
}

func defaultConfig() Config {
	return Config{
		Global: Global{
			OutputDir: ".",
		},
		Driver: DriverSpec{
			DownloadURL: defaultDownloadURL,
			ManifestURL: defaultManifestURL,
			Strategy:    "direct",
		},
		Updates: UpdatesSpec{
			URL:     defaultUpdatesURL,
			Channel: defaultChannel,
		},
	}
}

// LoadConfig reads the configuration from a reader into `cfg`.
func LoadConfig(r io.Reader, cfg *Config) error {
	if r == nil {
		return nil
	}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadConfigFile reads the configuration from a file into `cfg`.
// A missing file is not an error; the defaults apply.
func LoadConfigFile(name string, cfg *Config) error {
	file, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return LoadConfig(file, cfg)
}

type tplData struct {
	Version  string
	Platform string
}

func renderTemplate(tmpl string, data tplData) (string, error) {
	tpl := template.New("")

	tpl = tpl.Funcs(template.FuncMap{
		"trimPrefix": func(prefix string, s string) string {
			return strings.TrimPrefix(s, prefix)
		},
	})

	tpl, err := tpl.Parse(tmpl)
	if err != nil {
		return "", err
	}

	var w bytes.Buffer
	if err := tpl.Execute(&w, data); err != nil {
		return "", err
	}

	return w.String(), nil
}
