package main

import (
	"os"
	"path/filepath"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"
)

const ErrConfigFile errorkit.Error = "invalid zoo config file"

type Config struct {
	Animals     []string `env:"ZOO_ANIMALS" default:"cat,dog" separator:","`
	FolderName  string   `env:"ZOO_FOLDER_NAME" default:"s3://thumbnails/input"`
	FolderPages int      `env:"ZOO_FOLDER_PAGES" default:"3"`
	// ConfigFile is an optional YAML file.
	// Values set in the file take precedence over the environment.
	ConfigFile string `env:"ZOO_CONFIG_FILE"`
}

type fileConfig struct {
	Animals []string `yaml:"animals"`
	Folder  struct {
		Name  string `yaml:"name"`
		Pages *int   `yaml:"pages"`
	} `yaml:"folder"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Load(&cfg); err != nil {
		return cfg, err
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Clean(cfg.ConfigFile))
	if err != nil {
		return cfg, ErrConfigFile.Wrap(err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, ErrConfigFile.Wrap(err)
	}
	if fc.Animals != nil {
		cfg.Animals = fc.Animals
	}
	if fc.Folder.Name != "" {
		cfg.FolderName = fc.Folder.Name
	}
	if fc.Folder.Pages != nil {
		if *fc.Folder.Pages < 0 {
			return cfg, ErrConfigFile.F("negative folder page count: %d", *fc.Folder.Pages)
		}
		cfg.FolderPages = *fc.Folder.Pages
	}
	return cfg, nil
}
