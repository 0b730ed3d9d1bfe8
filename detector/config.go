package detector

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadToyConfig reads a ToyConfig from a JSON file, grounded on
// DefaultToyConfig for any field the file omits.
func LoadToyConfig(path string) (ToyConfig, error) {
	cfg := DefaultToyConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("detector: read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("detector: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToyConfig writes cfg to path as indented JSON.
func SaveToyConfig(path string, cfg ToyConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("detector: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("detector: write config %s: %w", path, err)
	}
	return nil
}
