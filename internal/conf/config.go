// Package conf loads and validates the application configuration from
// YAML files, environment variables and command line flags via viper.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// ClassifierSettings holds the temporal classifier thresholds.
// These are passed into the classifier as an explicit config struct,
// never read as ambient globals, so per-video classification stays
// safe to run concurrently and tests can vary parameters per case.
type ClassifierSettings struct {
	ConfidenceThreshold      float64 // minimum per-detection confidence, 0.0-1.0
	DominantSpeciesThreshold float64 // share of detections a species must exceed to win
	MaxSpeciesTransitions    int     // cluster transitions tolerated before Unsorted
	ConsecutiveEmptyFrames   int     // empty-frame gap length that closes a cluster
	UnknownShareThreshold    float64 // unknown-species share that forces Unsorted
}

// InputSettings describes what to analyze.
type InputSettings struct {
	Path      string // path to detector export file or directory
	Recursive bool   // true to scan subdirectories in directory analysis
}

// OutputSettings describes where results go.
type OutputSettings struct {
	File struct {
		Enabled bool   // true to write result files
		Path    string // output directory for result files
		Format  string // output format: table, csv or json
	}
	SQLite struct {
		Enabled bool   // true to save verdicts to a SQLite database
		Path    string // path to the SQLite database file
	}
}

// TaxonomySettings points at the species catalog.
type TaxonomySettings struct {
	Path string // custom taxonomy YAML, empty to use the embedded catalog
}

// ProcessingSettings controls directory analysis parallelism.
type ProcessingSettings struct {
	Workers int // videos classified in parallel, 0 means NumCPU
}

// Settings is the root configuration struct.
type Settings struct {
	Debug bool // enable debug output

	Input      InputSettings
	Output     OutputSettings
	Classifier ClassifierSettings
	Taxonomy   TaxonomySettings
	Processing ProcessingSettings
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into Settings.
// Configuration errors fail here, before any video is processed.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// Setting returns the current settings instance, or nil before Load.
func Setting() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter,
	// defined in defaults.go
	setDefaultConfig()

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file and writes it to the default config path
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfigYaml()), 0o644); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	fmt.Println("Created default config file at:", configPath)
	return viper.ReadInConfig()
}

// GetDefaultConfigPaths returns the config search paths in priority order:
// the working directory first, then the user config directory.
func GetDefaultConfigPaths() ([]string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving user config directory: %w", err)
	}
	return []string{".", filepath.Join(configDir, "wolfvue-go")}, nil
}
