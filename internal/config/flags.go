// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/slate/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	BlocksFilePath *string
	ThemeFilePath  *string
	DefaultBlock   *string
	// Flags for logger filters
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	SystemClipboard *bool
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.BlocksFilePath = flag.String("blocks", "", "Path to custom block definition file - Overrides config file")
	f.ThemeFilePath = flag.String("theme", "", "Path to theme file - Overrides config file")
	f.DefaultBlock = flag.String("block", "", "Block kind the editor starts in - Overrides config file")
	f.EnableTags = flag.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = flag.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = flag.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = flag.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", false, "Use system clipboard instead of internal clipboard")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments.
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config, verbose bool) {
	// Visit only processes flags that were actually set
	flag.Visit(func(fl *flag.Flag) {
		if verbose {
			logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		}
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil { // Empty string is valid ("-")
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "blocks":
			if f.BlocksFilePath != nil && *f.BlocksFilePath != "" {
				cfg.Editor.BlocksFilePath = *f.BlocksFilePath
			}
		case "theme":
			if f.ThemeFilePath != nil && *f.ThemeFilePath != "" {
				cfg.Editor.ThemeFilePath = *f.ThemeFilePath
			}
		case "block":
			if f.DefaultBlock != nil && *f.DefaultBlock != "" {
				cfg.Editor.DefaultBlock = *f.DefaultBlock
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Editor.SystemClipboard = *f.SystemClipboard
			}
		case "log-tags":
			if f.EnableTags != nil && *f.EnableTags != "" {
				cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
			}
		case "log-disable-tags":
			if f.DisableTags != nil && *f.DisableTags != "" {
				cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
			}
		case "log-packages":
			if f.EnablePkgs != nil && *f.EnablePkgs != "" {
				cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
			}
		case "log-disable-packages":
			if f.DisablePkgs != nil && *f.DisablePkgs != "" {
				cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
			}
		}
	})
}

// splitCommaList splits a comma-separated flag value, trimming blanks.
func splitCommaList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
