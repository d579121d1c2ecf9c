// cmd/slate/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/slate/internal/app"
	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/logger"
)

var version = "dev"

func main() {
	// --- Flag & Config Loading ---
	flags := &config.Flags{}
	flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("slate %s\n", version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logOutput, logFile := openLogOutput(cfg.Logger.LogFilePath)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.InitWithConfig(&cfg.Logger, logOutput)

	logger.Infof("Starting Slate editor...")
	logger.Debugf("Default block kind: %s", cfg.Editor.DefaultBlock)

	// --- Create and Run App ---
	slateApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := slateApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("Slate editor finished.")
}

// openLogOutput resolves the log destination. "-" means stderr; an
// empty path falls back to the conventional file under the user config
// dir, then to the working directory.
func openLogOutput(path string) (io.Writer, *os.File) {
	if path == "-" {
		return os.Stderr, nil
	}
	if path == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			dir := filepath.Join(configDir, config.ConfigDirName)
			if mkErr := os.MkdirAll(dir, 0755); mkErr == nil {
				path = filepath.Join(dir, config.DefaultLogFileName)
			}
		}
		if path == "" {
			path = config.DefaultLogFileName
		}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		stlog.Printf("Warning: failed to open log file '%s': %v (logging to stderr)", path, err)
		return os.Stderr, nil
	}
	return logFile, logFile
}
