package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/YakiFrog/sirius-face-anim/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Fullscreen           bool `yaml:"fullscreen"`
	Width                int  `yaml:"width"`
	Height               int  `yaml:"height"`
	BlinkDelayMinSeconds int  `yaml:"blink_delay_min_seconds"`
	BlinkDelayMaxSeconds int  `yaml:"blink_delay_max_seconds"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadFrom(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveTo(configPath, settings)
}

func loadFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Fullscreen:           settings.Fullscreen,
		Width:                settings.Width,
		Height:               settings.Height,
		BlinkDelayMinSeconds: int(settings.BlinkDelayMin / time.Second),
		BlinkDelayMaxSeconds: int(settings.BlinkDelayMax / time.Second),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Width > 0 {
		settings.Width = fileData.Width
	}
	if fileData.Height > 0 {
		settings.Height = fileData.Height
	}
	if fileData.BlinkDelayMinSeconds > 0 {
		settings.BlinkDelayMin = time.Duration(fileData.BlinkDelayMinSeconds) * time.Second
	}
	if fileData.BlinkDelayMaxSeconds > 0 {
		settings.BlinkDelayMax = time.Duration(fileData.BlinkDelayMaxSeconds) * time.Second
	}
	if settings.BlinkDelayMax < settings.BlinkDelayMin {
		defaults := preferences.DefaultSettings()
		settings.BlinkDelayMin = defaults.BlinkDelayMin
		settings.BlinkDelayMax = defaults.BlinkDelayMax
	}

	settings.Fullscreen = fileData.Fullscreen
}
