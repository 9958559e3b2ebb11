// Package config assembles the runtime configuration: Home Assistant
// credentials from dotenv/environment and the entity-to-position mapping
// from an optional YAML file.
package config

import (
	"fmt"
	"ha-sync/internal/domain/model"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const entitiesFilename = "entities.yaml"

type entitiesFile struct {
	Entities []model.EntityMapping `yaml:"entities"`
}

// Load reads .env next to the executable, then .env in the working
// directory (neither overrides variables already set in the environment),
// and validates the required values. entitiesPath overrides the default
// entities.yaml search when non-empty.
func Load(entitiesPath string) (*model.Config, error) {
	exeDir := executableDir()
	if exeDir != "" {
		_ = godotenv.Load(filepath.Join(exeDir, ".env"))
	}
	_ = godotenv.Load()

	url := os.Getenv("HASS_URL")
	token := os.Getenv("HASS_TOKEN")
	if url == "" || token == "" {
		return nil, fmt.Errorf("HASS_URL and HASS_TOKEN must be set in .env or environment")
	}

	entities, err := loadEntities(entitiesPath, exeDir)
	if err != nil {
		return nil, err
	}

	bin := os.Getenv("POSITION_BIN")
	if bin == "" {
		bin = "position"
	}

	return &model.Config{
		HassURL:     strings.TrimRight(url, "/"),
		HassToken:   token,
		PositionBin: bin,
		Entities:    entities,
	}, nil
}

// loadEntities resolves the mapping file: an explicit path must exist, the
// searched locations may not. With no file at all the built-in default
// mapping applies.
func loadEntities(path, exeDir string) ([]model.EntityMapping, error) {
	if path != "" {
		return parseEntities(path)
	}

	candidates := []string{}
	if exeDir != "" {
		candidates = append(candidates, filepath.Join(exeDir, entitiesFilename))
	}
	candidates = append(candidates, entitiesFilename)

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return parseEntities(p)
		}
	}
	return model.DefaultEntities(), nil
}

func parseEntities(path string) ([]model.EntityMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entities file %s: %w", path, err)
	}

	var f entitiesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing entities file %s: %w", path, err)
	}

	for i, m := range f.Entities {
		if m.EntityID == "" || m.PositionName == "" {
			return nil, fmt.Errorf("entities file %s: entry %d needs both entity and position", path, i+1)
		}
	}
	return f.Entities, nil
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
