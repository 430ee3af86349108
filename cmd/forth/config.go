package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the optional run-control file (-config), in the spirit of a
// .forthrc: interactive cosmetics plus scripts to run before the session.
type config struct {
	// Prompt shown by the interactive session.
	Prompt string `yaml:"prompt,omitempty"`

	// HistoryFile persists interactive line history; empty disables it.
	HistoryFile string `yaml:"history_file,omitempty"`

	// Trace enables dispatch trace logging, same as the -trace flag.
	Trace bool `yaml:"trace,omitempty"`

	// Prelude lists script files executed, in order, before any session
	// input and before script file arguments.
	Prelude []string `yaml:"prelude,omitempty"`
}

func defaultConfig() config {
	return config{Prompt: "ok> "}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %v: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultConfig().Prompt
	}
	return cfg, nil
}
