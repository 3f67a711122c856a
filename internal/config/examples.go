package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/patterns/internal/models"
	"go.yaml.in/yaml/v3"
)

const DefaultExamplesPath = "configs/examples.yaml"

func LoadExamplesConfig(path string) (*ExamplesConfig, error) {
	if path == "" {
		path = DefaultExamplesPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg ExamplesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *ExamplesConfig) {
	for i := range cfg.Anagrams {
		if cfg.Anagrams[i].ID == "" {
			cfg.Anagrams[i].ID = fmt.Sprintf("anagram-%d", i+1)
		}
		if cfg.Anagrams[i].Method == "" {
			cfg.Anagrams[i].Method = models.MethodFrequency
		}
	}
	for i := range cfg.Unique {
		if cfg.Unique[i].ID == "" {
			cfg.Unique[i].ID = fmt.Sprintf("unique-%d", i+1)
		}
		if cfg.Unique[i].Values == nil {
			cfg.Unique[i].Values = []int{}
		}
	}
}

func (c *ExamplesConfig) Validate() error {
	if len(c.Anagrams) == 0 && len(c.Unique) == 0 {
		return errors.New("no examples configured")
	}

	seen := make(map[string]bool)
	for _, e := range c.Anagrams {
		if seen[e.ID] {
			return fmt.Errorf("duplicate example id: %s", e.ID)
		}
		seen[e.ID] = true

		if !e.Method.Valid() {
			return fmt.Errorf("example %s: %w: %q", e.ID, models.ErrUnknownMethod, e.Method)
		}
	}
	for _, e := range c.Unique {
		if seen[e.ID] {
			return fmt.Errorf("duplicate example id: %s", e.ID)
		}
		seen[e.ID] = true

		if e.Expected < 0 {
			return fmt.Errorf("example %s: negative expected count %d", e.ID, e.Expected)
		}
	}

	return nil
}
