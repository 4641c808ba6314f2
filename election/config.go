// Package election runs a configured winner rule against a ballot
// model and reports the outcome.
package election

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/durandtibo/votingsys/vote"
)

// Rule identifies a winner-determination rule.
type Rule string

// Supported winner rules.
const (
	// RulePlurality elects the candidate with the most votes or first
	// preferences, no majority required.
	RulePlurality Rule = "plurality"

	// RuleAbsoluteMajority elects the candidate with strictly more than
	// 50% of the votes.
	RuleAbsoluteMajority Rule = "absolute_majority"

	// RuleSuperMajority elects the candidate with strictly more than a
	// configured threshold of the votes.
	RuleSuperMajority Rule = "super_majority"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// Config selects the winner rule to apply and its parameters.
// All fields are validated before the rule runs.
type Config struct {
	// Rule names the winner rule to apply.
	Rule Rule `yaml:"rule" validate:"required,oneof=plurality absolute_majority super_majority"`

	// Threshold is the minimal vote share for the super_majority rule.
	// It must be greater than 0.5 and at most 1.
	Threshold float64 `yaml:"threshold" validate:"required_if=Rule super_majority,omitempty,gt=0.5,lte=1"`

	// CountColumn names the column holding the voter count per ranking
	// pattern. It defaults to "count" when empty.
	CountColumn string `yaml:"count_column"`
}

// Validate checks the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.CountColumn == "" {
		c.CountColumn = vote.DefaultCountColumn
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid election config: %w", err)
	}
	return nil
}

// LoadConfig reads and validates an election configuration from a YAML
// file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read election config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse election config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
