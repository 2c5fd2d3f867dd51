package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/HulkBetii/YT-AllInOne/internal/cookies"
	"github.com/HulkBetii/YT-AllInOne/internal/platform"
	"github.com/HulkBetii/YT-AllInOne/internal/selector"
)

// Default values
const (
	DefaultMaxParallel = 2
	DefaultQuality     = selector.QualityBest
	DefaultBrowser     = cookies.BrowserNone

	MinParallel = 1
	MaxParallel = 10

	settingsDirName  = "yt-allinone"
	settingsFileName = "settings.json"
)

// Settings holds the persisted application configuration. Command-line flags
// override individual fields per run.
type Settings struct {
	DownloadDir string `json:"download_directory"`
	Quality     string `json:"quality"`
	Browser     string `json:"cookies_from_browser"`
	MaxParallel int    `json:"max_parallel_downloads"`

	path string
}

// Default returns settings with every field at its default value.
func Default() *Settings {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		dir = "downloads"
	}
	return &Settings{
		DownloadDir: dir,
		Quality:     DefaultQuality,
		Browser:     DefaultBrowser,
		MaxParallel: DefaultMaxParallel,
	}
}

// Load reads settings from the user config directory, falling back to
// defaults when no file exists yet.
func Load() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from an explicit path. A missing file yields
// defaults without error.
func LoadFrom(path string) (*Settings, error) {
	s := Default()
	s.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(data, s); err != nil {
		return Default(), err
	}
	s.normalize()
	return s, nil
}

// Save writes settings back to the path they were loaded from.
func (s *Settings) Save() error {
	path := s.path
	if path == "" {
		var err error
		if path, err = settingsPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	s.normalize()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// normalize clamps and defaults fields that came from disk.
func (s *Settings) normalize() {
	if s.MaxParallel < MinParallel {
		s.MaxParallel = DefaultMaxParallel
	}
	if s.MaxParallel > MaxParallel {
		s.MaxParallel = MaxParallel
	}
	if s.Quality == "" {
		s.Quality = DefaultQuality
	}
	if s.Browser == "" {
		s.Browser = DefaultBrowser
	}
	if s.DownloadDir == "" {
		s.DownloadDir = Default().DownloadDir
	}
}

func settingsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, settingsDirName, settingsFileName), nil
}
