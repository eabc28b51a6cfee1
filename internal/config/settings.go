package config

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
    "path/filepath"
    "strings"

    "github.com/spf13/viper"
)

// Settings are user preferences. Env var overrides use prefix TABGROUPS_.
type Settings struct {
    Workspace string `mapstructure:"workspace"`
    NoColor   bool   `mapstructure:"no_color"`
    History   int    `mapstructure:"history"`
    LogFile   string `mapstructure:"log_file"`
    Verbose   bool   `mapstructure:"verbose"`
}

// DefaultHistory mirrors the store's default undo depth.
const DefaultHistory = 50

// Dir returns the settings directory: $XDG_CONFIG_HOME/tabgroups, falling
// back to ~/.config/tabgroups.
func Dir() string {
    if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
        return filepath.Join(x, "tabgroups")
    }
    return filepath.Join(os.Getenv("HOME"), ".config", "tabgroups")
}

// SettingsPath is where settings are read from and written to.
func SettingsPath() string {
    if p := os.Getenv("TABGROUPS_CONFIG"); p != "" {
        return p
    }
    return filepath.Join(Dir(), "config.toml")
}

func LoadSettings() (Settings, error) {
    v := viper.New()

    v.SetDefault("workspace", filepath.Join(Dir(), "workspace.json"))
    v.SetDefault("no_color", false)
    v.SetDefault("history", DefaultHistory)
    v.SetDefault("log_file", "")
    v.SetDefault("verbose", false)

    v.SetConfigType("toml")
    if p := os.Getenv("TABGROUPS_CONFIG"); p != "" {
        v.SetConfigFile(p)
    } else {
        v.AddConfigPath(Dir())
        v.SetConfigName("config")
    }

    v.SetEnvPrefix("TABGROUPS")
    v.AutomaticEnv()
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

    // a missing file is fine; a broken one is not
    if err := v.ReadInConfig(); err != nil {
        var notFound viper.ConfigFileNotFoundError
        if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
            return Settings{}, fmt.Errorf("read settings: %w", err)
        }
    }

    var s Settings
    if err := v.Unmarshal(&s); err != nil {
        return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
    }
    if s.History < 0 {
        s.History = 0
    }
    return s, nil
}

// SaveSettings writes s to path as TOML, creating the directory if needed.
func SaveSettings(path string, s Settings) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("mkdir settings dir: %w", err)
    }
    v := viper.New()
    v.SetConfigType("toml")
    v.Set("workspace", s.Workspace)
    v.Set("no_color", s.NoColor)
    v.Set("history", s.History)
    v.Set("log_file", s.LogFile)
    v.Set("verbose", s.Verbose)
    if err := v.WriteConfigAs(path); err != nil {
        return fmt.Errorf("write settings: %w", err)
    }
    return nil
}
