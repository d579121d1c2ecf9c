// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/slate/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
	BlocksFilePath  string `toml:"blocks_file"` // Custom block definitions (TOML)
	ThemeFilePath   string `toml:"theme_file"`  // Active theme override
	DefaultBlock    string `toml:"default_block"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means default path logic applies
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
			DefaultBlock:    "paragraph",
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; the defaults simply stand.
func loadFromFile(filePath string, verbose bool) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Editor.DefaultBlock == "" {
		c.Editor.DefaultBlock = defaults.Editor.DefaultBlock
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		// During initial load, avoid logging as logger isn't initialized yet.
		verbose := false

		cfg := NewDefaultConfig()

		// Determine effective config file path.
		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			} else {
				effectivePath = "" // Cannot resolve default path
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath, verbose)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.TabWidth > 0 {
					cfg.Editor.TabWidth = fileCfg.Editor.TabWidth
				}
				if fileCfg.Editor.StatusBarHeight > 0 {
					cfg.Editor.StatusBarHeight = fileCfg.Editor.StatusBarHeight
				}
				if fileCfg.Editor.BlocksFilePath != "" {
					cfg.Editor.BlocksFilePath = fileCfg.Editor.BlocksFilePath
				}
				if fileCfg.Editor.ThemeFilePath != "" {
					cfg.Editor.ThemeFilePath = fileCfg.Editor.ThemeFilePath
				}
				if fileCfg.Editor.DefaultBlock != "" {
					cfg.Editor.DefaultBlock = fileCfg.Editor.DefaultBlock
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg, verbose)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		// This indicates a programming error - LoadConfig should be called in main.
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

// DefaultBlocksFilePath returns the conventional location of the user
// block definition file, or "" when the config dir is unavailable.
func DefaultBlocksFilePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultBlocksFileName)
}
