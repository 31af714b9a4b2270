package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "catrunner.yaml"

// Loaded is a parsed configuration together with the file it came from.
// Path is empty when the embedded default was used.
type Loaded struct {
	Config Config
	Path   string
}

// Load reads the cat runner configuration.
// Search order: customPath -> ~/.catrunner/catrunner.yaml -> ./configs/catrunner.yaml -> embedded default.
// Values missing from a file keep their defaults. A custom path that cannot
// be read or parsed is an error; the other locations are skipped silently.
func Load(customPath string) (Loaded, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Loaded{Config: Default()}, err
		}
		return Loaded{Config: cfg, Path: customPath}, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return Loaded{Config: cfg, Path: path}, nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Loaded{Config: Default()}, nil // Fallback to hardcoded if embed fails
	}
	return Loaded{Config: cfg}, nil
}

// Reload re-reads a previously loaded file.
func Reload(path string) (Config, error) {
	return loadFile(path)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".catrunner", FileName))
	}
	paths = append(paths, filepath.Join("configs", FileName))
	return paths
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
