package domain

import "path/filepath"

// Config represents the application configuration.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Log    LogConfig    `toml:"log"`
	Colors ColorsConfig `toml:"colors"`
}

// StoreConfig holds task storage settings from the [store] section.
type StoreConfig struct {
	Path string `toml:"path,omitempty"` // Store file path (default: tasks.json in the working directory)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	Path  string `toml:"path,omitempty"`  // Log file path (empty = logging disabled)
}

// ColorsConfig holds display color overrides from the [colors]
// section. Values are hex colors such as "#ff5f5f"; empty values keep
// the built-in palette.
type ColorsConfig struct {
	Critical string `toml:"critical,omitempty"`
	High     string `toml:"high,omitempty"`
	Normal   string `toml:"normal,omitempty"`
	Low      string `toml:"low,omitempty"`
	Overdue  string `toml:"overdue,omitempty"`
	Today    string `toml:"today,omitempty"`
	InTime   string `toml:"in_time,omitempty"`
}

// Directory and file names for tasktab.
const (
	AppDirName          = "tasktab"       // Directory name under the config home
	ConfigFileName      = "config.toml"   // Global config file name
	LocalConfigFileName = ".tasktab.toml" // Config file name in the working directory
	DefaultStoreFile    = "tasks.json"    // Default store file name
	DefaultLogLevel     = "info"
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the per-directory config path.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Path: DefaultStoreFile},
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}
