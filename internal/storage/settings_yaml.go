package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"officesim/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	StartingMoney     int     `yaml:"starting_money"`
	StartingEmployees int     `yaml:"starting_employees"`
	QTEGapMinSeconds  int     `yaml:"qte_gap_min_seconds"`
	QTEGapMaxSeconds  int     `yaml:"qte_gap_max_seconds"`
	Difficulty        float64 `yaml:"difficulty"`
	EventOpacity      float64 `yaml:"event_opacity"`
	AutoPauseOnIdle   *bool   `yaml:"auto_pause_on_idle"`
	Seed              int64   `yaml:"seed"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from the YAML file at path.
func LoadSettingsFile(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
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

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to the YAML file at path.
func SaveSettingsFile(path string, settings preferences.Settings) error {
	fileData := yamlSettings{
		StartingMoney:     settings.StartingMoney,
		StartingEmployees: settings.StartingEmployees,
		QTEGapMinSeconds:  int(settings.QTEGapMin / time.Second),
		QTEGapMaxSeconds:  int(settings.QTEGapMax / time.Second),
		Difficulty:        settings.Difficulty,
		EventOpacity:      settings.EventOpacity,
		AutoPauseOnIdle:   &settings.AutoPauseOnIdle,
		Seed:              settings.Seed,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	return writeFile(path, serialized)
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.StartingMoney > 0 {
		settings.StartingMoney = fileData.StartingMoney
	}
	if fileData.StartingEmployees > 0 && fileData.StartingEmployees <= 16 {
		settings.StartingEmployees = fileData.StartingEmployees
	}
	if fileData.QTEGapMinSeconds > 0 {
		settings.QTEGapMin = time.Duration(fileData.QTEGapMinSeconds) * time.Second
	}
	if fileData.QTEGapMaxSeconds > 0 {
		settings.QTEGapMax = time.Duration(fileData.QTEGapMaxSeconds) * time.Second
	}
	if settings.QTEGapMax < settings.QTEGapMin {
		settings.QTEGapMax = settings.QTEGapMin
	}

	if fileData.Difficulty >= 0.5 && fileData.Difficulty <= 3 {
		settings.Difficulty = fileData.Difficulty
	}

	if fileData.EventOpacity > 0 && fileData.EventOpacity <= 1 {
		settings.EventOpacity = fileData.EventOpacity
	}

	if fileData.AutoPauseOnIdle != nil {
		settings.AutoPauseOnIdle = *fileData.AutoPauseOnIdle
	}
	settings.Seed = fileData.Seed
}
