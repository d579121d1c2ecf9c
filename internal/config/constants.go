// internal/config/constants.go
package config

import "time"

// Base application details
const AppName = "slate"
const ConfigDirName = "slate"
const ThemesDirName = "themes"
const DefaultThemeFileName = "theme.toml"   // Active theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultBlocksFileName = "blocks.toml" // User block definitions
const DefaultLogFileName = "slate.log"

// UI Layout
const StatusBarHeight = 1
const MenuMaxVisibleRows = 10

// Status Bar
const MessageTimeout = 4 * time.Second

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultTabWidth = 4
const SystemClipboard = true
const HighlightDebounce = 150 * time.Millisecond
