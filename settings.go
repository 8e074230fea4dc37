package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds persistent stormview configuration.
type Settings struct {
	// HostURL is the websocket endpoint the view's bridge channel dials.
	HostURL string `json:"host_url"`
	// Listen is the address the stub host binds.
	Listen string `json:"listen"`
	// TickMillis is the clock readout refresh cadence.
	TickMillis int `json:"tick_millis"`
}

// settingsDir returns the platform config directory for stormview.
func settingsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, "stormview")
}

// settingsPath returns the full path to settings.json.
func settingsPath() string {
	return filepath.Join(settingsDir(), "settings.json")
}

func defaultSettings() *Settings {
	return &Settings{
		HostURL:    "ws://127.0.0.1:8471/channel",
		Listen:     "127.0.0.1:8471",
		TickMillis: 1000,
	}
}

// LoadSettings reads settings from disk or returns defaults. Fields left
// empty in the file keep their defaults.
func LoadSettings() *Settings {
	s := defaultSettings()
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, s); err != nil {
		return defaultSettings()
	}
	if s.HostURL == "" {
		s.HostURL = defaultSettings().HostURL
	}
	if s.Listen == "" {
		s.Listen = defaultSettings().Listen
	}
	if s.TickMillis <= 0 {
		s.TickMillis = defaultSettings().TickMillis
	}
	return s
}

// Save writes settings to disk, creating the config directory if needed.
func (s *Settings) Save() error {
	if err := os.MkdirAll(settingsDir(), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(settingsPath(), data, 0o644)
}

// TickInterval returns the refresh cadence as a duration.
func (s *Settings) TickInterval() time.Duration {
	return time.Duration(s.TickMillis) * time.Millisecond
}
