package internal

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/AlexanderVinarsky/stDBMS/internal/store"
)

type StDbmsConfig struct {
	AppName string `mapstructure:"app_name"`

	Storage struct {
		Workdir string `mapstructure:"workdir"`
		PageExt string `mapstructure:"page_ext"`
		DirExt  string `mapstructure:"dir_ext"`
	} `mapstructure:"storage"`
}

// DefaultConfig fills every field a config file may omit. The default
// workdir lives under the user's home directory.
func DefaultConfig() *StDbmsConfig {
	cfg := &StDbmsConfig{AppName: "stdbms"}
	cfg.Storage.Workdir = defaultWorkdir()
	cfg.Storage.PageExt = store.DefaultPageExt
	cfg.Storage.DirExt = store.DefaultDirExt
	return cfg
}

// LoadConfig reads an explicit YAML config file. An unreadable file is
// a hard error; missing fields fall back to the defaults.
func LoadConfig(path string) (*StDbmsConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func defaultWorkdir() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return ".stdbms"
	}
	return filepath.Join(home, ".stdbms")
}
