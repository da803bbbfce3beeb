// Package config loads the YAML run configuration: which rules to
// apply, which alias names to leave alone, and how failures and
// output width are handled.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"restyle/internal/codec"
	"restyle/rewrite"
	"restyle/rules"
)

// RulesAll selects every built-in rule.
const RulesAll = "all"

// Config is one parsed configuration file.
type Config struct {
	// Rules names the rules to run, in order, or the single word "all"
	// for the default set. Accepts a string or a list in YAML.
	Rules StringOrArray `yaml:"rules"`
	// ExcludeAliases lists short names the alias machinery must never
	// define or rewrite.
	ExcludeAliases []string `yaml:"exclude-aliases"`
	// MaxWidth is the printer line width. Zero picks the default.
	MaxWidth int `yaml:"max-width"`
	// FailFast stops on the first failing rule instead of logging and
	// moving on.
	FailFast bool `yaml:"fail-fast"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func applyDefaults(cfg *Config) {
	if cfg.Rules.IsEmpty() {
		cfg.Rules = StringOrArray{RulesAll}
	}

	if cfg.MaxWidth == 0 {
		cfg.MaxWidth = codec.DefaultMaxWidth
	}
}

// RuleList resolves the configured rule names into runnable rules.
func (cfg *Config) RuleList() ([]rewrite.Rule, error) {
	if cfg.Rules.Contains(RulesAll) {
		return rules.Default(rules.CategoryAll), nil
	}

	out := make([]rewrite.Rule, 0, len(cfg.Rules))

	for _, name := range cfg.Rules {
		if name == rules.NameAliasExpand {
			out = append(out, rules.AliasExpand(cfg.ExcludedAliases()))

			continue
		}

		r, ok := rules.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}

		out = append(out, r)
	}

	return out, nil
}

// ExcludedAliases returns the exclusion list as a set.
func (cfg *Config) ExcludedAliases() map[string]struct{} {
	out := make(map[string]struct{}, len(cfg.ExcludeAliases))
	for _, name := range cfg.ExcludeAliases {
		out[name] = struct{}{}
	}

	return out
}

// FailureMode maps the fail-fast switch onto the pipeline's policy.
func (cfg *Config) FailureMode() rewrite.FailureMode {
	if cfg.FailFast {
		return rewrite.ModePropagate
	}

	return rewrite.ModeLog
}
